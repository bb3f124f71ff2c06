package queries

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
	ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
		"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
	)
)

// OrderResponse is the order read model.
type OrderResponse struct {
	ID                 kernel.UUID
	OrderNumber        string
	OrderDate          time.Time
	CustomerID         kernel.UUID
	AmountExcludingTax decimal.Decimal
	AmountIncludingTax decimal.Decimal
	Status             string
	DeliveryAddress    string
	Notes              string
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:                 aggregate.ID(),
		OrderNumber:        aggregate.OrderNumber(),
		OrderDate:          aggregate.OrderDate(),
		CustomerID:         aggregate.CustomerID(),
		AmountExcludingTax: aggregate.TotalAmountExcludingTax(),
		AmountIncludingTax: aggregate.TotalAmountIncludingTax(),
		Status:             aggregate.Status().String(),
		DeliveryAddress:    aggregate.DeliveryAddress(),
		Notes:              aggregate.Notes(),
	}
}

// GetAllOrdersQuery retrieves every order, whatever its status. Cancelled
// and delivered orders stay listed as history.
type GetAllOrdersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryHandler serves order listings.
type GetAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
func NewGetAllOrdersQueryHandler(orders ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle returns all orders as read models.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, toOrderResponse(aggregate))
	}

	return responses, nil
}

// GetOrderByIDQuery retrieves a single order by id.
type GetOrderByIDQuery struct {
	orderID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderByIDQueryHandler serves single order lookups.
type GetOrderByIDQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderByIDQueryHandler creates a handler for order lookups.
func NewGetOrderByIDQueryHandler(orders ports.OrderRepository) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{orders: orders}
}

// Handle returns the order or errs.ObjectNotFoundError.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return toOrderResponse(aggregate), nil
}

// GetOrdersByCustomerQuery retrieves all orders placed by one customer.
type GetOrdersByCustomerQuery struct {
	customerID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query for a customer's orders.
func NewGetOrdersByCustomerQuery(customerID kernel.UUID) (GetOrdersByCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersByCustomerQuery{}, errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}

	return GetOrdersByCustomerQuery{
		customerID: customerID,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer's identifier.
func (q GetOrdersByCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetOrdersByCustomerQueryHandler serves per-customer order listings.
type GetOrdersByCustomerQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer orders.
func NewGetOrdersByCustomerQueryHandler(orders ports.OrderRepository) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{orders: orders}
}

// Handle returns the customer's orders; an unknown customer simply yields
// an empty list.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orders.GetByCustomerID(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, toOrderResponse(aggregate))
	}

	return responses, nil
}
