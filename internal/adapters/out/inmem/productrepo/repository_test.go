package productrepo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/adapters/out/inmem/productrepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/pkg/errs"
)

func Test_InMemoryProductRepository(t *testing.T) {
	ctx := context.Background()

	newProduct := func(t *testing.T, name string) *product.Product {
		t.Helper()
		aggregate, err := product.NewProduct(
			name, "", decimal.RequireFromString("100"), decimal.RequireFromString("20"))
		require.NoError(t, err)
		return aggregate
	}

	t.Run("should round trip a product", func(t *testing.T) {
		repo := productrepo.NewInMemoryProductRepository()
		aggregate := newProduct(t, "Desk Lamp")

		require.NoError(t, repo.Save(ctx, aggregate))

		loaded, err := repo.Get(ctx, aggregate.ID())
		require.NoError(t, err)
		assert.True(t, aggregate.IsEqual(loaded))
	})

	t.Run("should report missing ids as not found", func(t *testing.T) {
		repo := productrepo.NewInMemoryProductRepository()
		_, err := repo.Get(ctx, kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should sort the listing by name", func(t *testing.T) {
		repo := productrepo.NewInMemoryProductRepository()
		require.NoError(t, repo.Save(ctx, newProduct(t, "Zebra Rug")))
		require.NoError(t, repo.Save(ctx, newProduct(t, "Armchair")))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Armchair", all[0].Name())
		assert.Equal(t, "Zebra Rug", all[1].Name())
	})

	t.Run("should keep soft deleted products retrievable", func(t *testing.T) {
		repo := productrepo.NewInMemoryProductRepository()
		aggregate := newProduct(t, "Old Chair")
		aggregate.SetActive(false)
		require.NoError(t, repo.Save(ctx, aggregate))

		loaded, err := repo.Get(ctx, aggregate.ID())
		require.NoError(t, err)
		assert.False(t, loaded.IsActive())
	})
}
