// Package productrepo provides the in-memory product store.
package productrepo

import (
	"context"
	"sort"
	"sync"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/pkg/errs"
)

// InMemoryProductRepository implements ports.ProductRepository over an
// RWMutex-guarded map with upsert semantics.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[kernel.UUID]*product.Product
}

// NewInMemoryProductRepository creates an empty product store.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[kernel.UUID]*product.Product),
	}
}

// Get retrieves a product by id, active or not.
func (r *InMemoryProductRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.products[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product id", id)
	}

	return aggregate, nil
}

// GetAll retrieves every product sorted by name.
func (r *InMemoryProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregates := make([]*product.Product, 0, len(r.products))
	for _, aggregate := range r.products {
		aggregates = append(aggregates, aggregate)
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].Name() < aggregates[j].Name()
	})
	return aggregates, nil
}

// Save upserts the product by id.
func (r *InMemoryProductRepository) Save(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[aggregate.ID()] = aggregate
	return nil
}
