// Package ports defines repository interfaces for the back-office domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
//
// Every repository follows upsert semantics: Save stores a new aggregate or
// replaces the stored one with the same id. There is no optimistic
// concurrency token; concurrent saves of the same id are last-write-wins.
package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Get retrieves an order by its unique identifier.
	// Returns errs.ObjectNotFoundError when the id is absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order, regardless of status.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByCustomerID retrieves all orders placed by the given customer.
	GetByCustomerID(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// Save upserts the order by id.
	Save(ctx context.Context, aggregate *order.Order) error
}
