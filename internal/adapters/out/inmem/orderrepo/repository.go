// Package orderrepo provides the in-memory order store.
package orderrepo

import (
	"context"
	"sort"
	"sync"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
)

// InMemoryOrderRepository implements ports.OrderRepository over an
// RWMutex-guarded map. Save follows upsert semantics; concurrent writers
// to the same id end up last-write-wins.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
}

// NewInMemoryOrderRepository creates an empty order store.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// Get retrieves an order by id.
func (r *InMemoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order id", id)
	}

	return aggregate, nil
}

// GetAll retrieves every order, sorted by order date then order number so
// listings are stable across calls.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregates := make([]*order.Order, 0, len(r.orders))
	for _, aggregate := range r.orders {
		aggregates = append(aggregates, aggregate)
	}

	sortOrders(aggregates)
	return aggregates, nil
}

// GetByCustomerID retrieves the orders placed by one customer. An unknown
// customer yields an empty slice, not an error.
func (r *InMemoryOrderRepository) GetByCustomerID(
	_ context.Context,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregates := make([]*order.Order, 0)
	for _, aggregate := range r.orders {
		if aggregate.CustomerID().IsEqual(customerID) {
			aggregates = append(aggregates, aggregate)
		}
	}

	sortOrders(aggregates)
	return aggregates, nil
}

// Save upserts the order by id.
func (r *InMemoryOrderRepository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[aggregate.ID()] = aggregate
	return nil
}

func sortOrders(aggregates []*order.Order) {
	sort.Slice(aggregates, func(i, j int) bool {
		if !aggregates[i].OrderDate().Equal(aggregates[j].OrderDate()) {
			return aggregates[i].OrderDate().Before(aggregates[j].OrderDate())
		}
		return aggregates[i].OrderNumber() < aggregates[j].OrderNumber()
	})
}
