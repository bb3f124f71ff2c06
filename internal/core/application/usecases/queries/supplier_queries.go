package queries

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/supplier"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var (
	ErrGetAllSuppliersQueryIsNotConstructed = errors.New(
		"GetAllSuppliersQuery must be created via NewGetAllSuppliersQuery constructor",
	)
	ErrGetSupplierByIDQueryIsNotConstructed = errors.New(
		"GetSupplierByIDQuery must be created via NewGetSupplierByIDQuery constructor",
	)
)

// SupplierResponse is the supplier read model.
type SupplierResponse struct {
	ID          kernel.UUID
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	IsActive    bool
}

func toSupplierResponse(aggregate *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Email:       aggregate.Email(),
		PhoneNumber: aggregate.PhoneNumber(),
		Address:     aggregate.Address(),
		IsActive:    aggregate.IsActive(),
	}
}

// GetAllSuppliersQuery retrieves active suppliers. Soft deleted suppliers
// are hidden.
type GetAllSuppliersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllSuppliersQuery creates a query to list active suppliers.
func NewGetAllSuppliersQuery() GetAllSuppliersQuery {
	return GetAllSuppliersQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllSuppliersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSuppliersQueryIsNotConstructed)
}

// GetAllSuppliersQueryHandler serves supplier listings.
type GetAllSuppliersQueryHandler struct {
	suppliers ports.SupplierRepository
}

// NewGetAllSuppliersQueryHandler creates a handler for supplier listings.
func NewGetAllSuppliersQueryHandler(suppliers ports.SupplierRepository) GetAllSuppliersQueryHandler {
	return GetAllSuppliersQueryHandler{suppliers: suppliers}
}

// Handle returns all active suppliers as read models.
func (h GetAllSuppliersQueryHandler) Handle(
	ctx context.Context,
	query GetAllSuppliersQuery,
) ([]SupplierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.suppliers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if !aggregate.IsActive() {
			continue
		}

		responses = append(responses, toSupplierResponse(aggregate))
	}

	return responses, nil
}

// GetSupplierByIDQuery retrieves a single supplier by id.
type GetSupplierByIDQuery struct {
	supplierID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetSupplierByIDQuery creates a query for one supplier.
func NewGetSupplierByIDQuery(supplierID kernel.UUID) (GetSupplierByIDQuery, error) {
	if err := supplierID.Validate(); err != nil {
		return GetSupplierByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("supplier id", err)
	}

	return GetSupplierByIDQuery{
		supplierID: supplierID,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierByIDQueryIsNotConstructed)
}

// SupplierID returns the requested supplier's identifier.
func (q GetSupplierByIDQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

// GetSupplierByIDQueryHandler serves single supplier lookups.
type GetSupplierByIDQueryHandler struct {
	suppliers ports.SupplierRepository
}

// NewGetSupplierByIDQueryHandler creates a handler for supplier lookups.
func NewGetSupplierByIDQueryHandler(suppliers ports.SupplierRepository) GetSupplierByIDQueryHandler {
	return GetSupplierByIDQueryHandler{suppliers: suppliers}
}

// Handle returns the supplier or errs.ObjectNotFoundError.
func (h GetSupplierByIDQueryHandler) Handle(
	ctx context.Context,
	query GetSupplierByIDQuery,
) (SupplierResponse, error) {
	if err := query.Validate(); err != nil {
		return SupplierResponse{}, err
	}

	aggregate, err := h.suppliers.Get(ctx, query.SupplierID())
	if err != nil {
		return SupplierResponse{}, err
	}

	return toSupplierResponse(aggregate), nil
}
