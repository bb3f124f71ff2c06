package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order for a
// customer. The order starts in Pending status with zero totals; totals are
// supplied later through UpdateOrderTotalsCommand.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, "12 Harbour Lane", "leave at the door")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(orderRepo)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	deliveryAddress string
	notes           string

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer id is valid and the delivery address is not
// blank. Notes are optional.
func NewCreateOrderCommand(customerID kernel.UUID, deliveryAddress, notes string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Notes returns the free-form order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if kernel.IsBlank(deliveryAddress) {
		return errs.NewValueIsRequiredError("delivery address")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

// CreateOrderCommandHandler handles order creation.
type CreateOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orders ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orders: orders}
}

// Handle creates the order in Pending status and persists it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.CustomerID(), cmd.DeliveryAddress(), cmd.Notes())
	if err != nil {
		return nil, err
	}

	if err := h.orders.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
