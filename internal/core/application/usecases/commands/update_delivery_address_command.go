package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrUpdateDeliveryAddressCommandIsNotConstructed = errors.New(
	"UpdateDeliveryAddressCommand must be created via NewUpdateDeliveryAddressCommand constructor",
)

// UpdateDeliveryAddressCommand represents a request to change where an order
// is delivered. Only pending and confirmed orders accept address changes.
type UpdateDeliveryAddressCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	newAddress string

	guard kernel.ConstructorGuard
}

// NewUpdateDeliveryAddressCommand creates a command to change an order's
// delivery address.
func NewUpdateDeliveryAddressCommand(orderID kernel.UUID, newAddress string) (UpdateDeliveryAddressCommand, error) {
	cmd := UpdateDeliveryAddressCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewAddress(newAddress),
	); err != nil {
		return UpdateDeliveryAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryAddressCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateDeliveryAddressCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewAddress returns the replacement delivery address.
func (c UpdateDeliveryAddressCommand) NewAddress() string {
	return c.newAddress
}

func (c *UpdateDeliveryAddressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryAddressCommand) setNewAddress(newAddress string) error {
	if kernel.IsBlank(newAddress) {
		return errs.NewValueIsRequiredError("delivery address")
	}

	c.newAddress = newAddress
	return nil
}

// UpdateDeliveryAddressCommandHandler handles delivery address changes.
type UpdateDeliveryAddressCommandHandler struct {
	orders ports.OrderRepository
}

// NewUpdateDeliveryAddressCommandHandler creates a handler for address changes.
func NewUpdateDeliveryAddressCommandHandler(orders ports.OrderRepository) UpdateDeliveryAddressCommandHandler {
	return UpdateDeliveryAddressCommandHandler{orders: orders}
}

// Handle loads the order, applies the new address and persists the result.
func (h UpdateDeliveryAddressCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryAddressCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.UpdateDeliveryAddress(cmd.NewAddress()); err != nil {
		return nil, err
	}

	if err := h.orders.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
