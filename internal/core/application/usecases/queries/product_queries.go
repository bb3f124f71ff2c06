package queries

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var (
	ErrGetAllProductsQueryIsNotConstructed = errors.New(
		"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
	)
	ErrGetProductByIDQueryIsNotConstructed = errors.New(
		"GetProductByIDQuery must be created via NewGetProductByIDQuery constructor",
	)
)

// ProductResponse is the product read model. PriceIncludingTax is derived
// from the stored net price and VAT rate.
type ProductResponse struct {
	ID                kernel.UUID
	Name              string
	Description       string
	Price             decimal.Decimal
	VATRate           decimal.Decimal
	PriceIncludingTax decimal.Decimal
	IsActive          bool
	SupplierID        *kernel.UUID
}

func toProductResponse(aggregate *product.Product) ProductResponse {
	response := ProductResponse{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		VATRate:     aggregate.VATRate(),
		IsActive:    aggregate.IsActive(),
		SupplierID:  aggregate.SupplierID(),
	}

	if breakdown, err := aggregate.PriceBreakdown(); err == nil {
		response.PriceIncludingTax = breakdown.AmountIncludingTax()
	} else {
		// Drafts have no valid price yet; echo the net price.
		response.PriceIncludingTax = aggregate.Price()
	}

	return response
}

// GetAllProductsQuery retrieves the active catalogue. Soft deleted
// products are hidden.
type GetAllProductsQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to list active products.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetAllProductsQueryHandler serves catalogue listings.
type GetAllProductsQueryHandler struct {
	products ports.ProductRepository
}

// NewGetAllProductsQueryHandler creates a handler for catalogue listings.
func NewGetAllProductsQueryHandler(products ports.ProductRepository) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{products: products}
}

// Handle returns all active products as read models.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if !aggregate.IsActive() {
			continue
		}

		responses = append(responses, toProductResponse(aggregate))
	}

	return responses, nil
}

// GetProductByIDQuery retrieves a single product by id, active or not.
type GetProductByIDQuery struct {
	productID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetProductByIDQuery creates a query for one product.
func NewGetProductByIDQuery(productID kernel.UUID) (GetProductByIDQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("product id", err)
	}

	return GetProductByIDQuery{
		productID: productID,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetProductByIDQueryIsNotConstructed)
}

// ProductID returns the requested product's identifier.
func (q GetProductByIDQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetProductByIDQueryHandler serves single product lookups.
type GetProductByIDQueryHandler struct {
	products ports.ProductRepository
}

// NewGetProductByIDQueryHandler creates a handler for product lookups.
func NewGetProductByIDQueryHandler(products ports.ProductRepository) GetProductByIDQueryHandler {
	return GetProductByIDQueryHandler{products: products}
}

// Handle returns the product or errs.ObjectNotFoundError.
func (h GetProductByIDQueryHandler) Handle(
	ctx context.Context,
	query GetProductByIDQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	aggregate, err := h.products.Get(ctx, query.ProductID())
	if err != nil {
		return ProductResponse{}, err
	}

	return toProductResponse(aggregate), nil
}
