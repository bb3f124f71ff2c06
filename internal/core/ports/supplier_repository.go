package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for supplier aggregates.
type SupplierRepository interface {
	// Get retrieves a supplier by its unique identifier.
	// Returns errs.ObjectNotFoundError when the id is absent.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)

	// GetAll retrieves every stored supplier, active or not.
	GetAll(ctx context.Context) ([]*supplier.Supplier, error)

	// Save upserts the supplier by id.
	Save(ctx context.Context, aggregate *supplier.Supplier) error
}
