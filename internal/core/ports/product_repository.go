package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	// Returns errs.ObjectNotFoundError when the id is absent.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves every stored product, active or not.
	// Filtering inactive products is the read side's concern.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Save upserts the product by id.
	Save(ctx context.Context, aggregate *product.Product) error
}
