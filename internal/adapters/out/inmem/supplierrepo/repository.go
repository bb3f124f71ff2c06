// Package supplierrepo provides the in-memory supplier store.
package supplierrepo

import (
	"context"
	"sort"
	"sync"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/supplier"
	"backoffice/internal/pkg/errs"
)

// InMemorySupplierRepository implements ports.SupplierRepository over an
// RWMutex-guarded map with upsert semantics.
type InMemorySupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[kernel.UUID]*supplier.Supplier
}

// NewInMemorySupplierRepository creates an empty supplier store.
func NewInMemorySupplierRepository() *InMemorySupplierRepository {
	return &InMemorySupplierRepository{
		suppliers: make(map[kernel.UUID]*supplier.Supplier),
	}
}

// Get retrieves a supplier by id, active or not.
func (r *InMemorySupplierRepository) Get(_ context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.suppliers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("supplier id", id)
	}

	return aggregate, nil
}

// GetAll retrieves every supplier sorted by name.
func (r *InMemorySupplierRepository) GetAll(_ context.Context) ([]*supplier.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregates := make([]*supplier.Supplier, 0, len(r.suppliers))
	for _, aggregate := range r.suppliers {
		aggregates = append(aggregates, aggregate)
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].Name() < aggregates[j].Name()
	})
	return aggregates, nil
}

// Save upserts the supplier by id.
func (r *InMemorySupplierRepository) Save(_ context.Context, aggregate *supplier.Supplier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.suppliers[aggregate.ID()] = aggregate
	return nil
}
