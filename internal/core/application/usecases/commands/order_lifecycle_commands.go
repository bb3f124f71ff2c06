package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// The four lifecycle commands carry nothing but the order id. They differ
// only in which transition the aggregate is asked to make, so they share
// one base struct and one handler helper.
type orderLifecycleCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard kernel.ConstructorGuard
}

func newOrderLifecycleCommand(orderID kernel.UUID) (orderLifecycleCommand, error) {
	if err := orderID.Validate(); err != nil {
		return orderLifecycleCommand{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	return orderLifecycleCommand{
		orderID: orderID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order's identifier.
func (c orderLifecycleCommand) OrderID() kernel.UUID {
	return c.orderID
}

func transitionOrder(
	ctx context.Context,
	orders ports.OrderRepository,
	orderID kernel.UUID,
	transition func(*order.Order) error,
) (*order.Order, error) {
	aggregate, err := orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := transition(aggregate); err != nil {
		return nil, err
	}

	if err := orders.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// ConfirmOrderCommand represents a request to confirm a pending order.
type ConfirmOrderCommand struct{ orderLifecycleCommand }

// NewConfirmOrderCommand creates a command to confirm an order.
func NewConfirmOrderCommand(orderID kernel.UUID) (ConfirmOrderCommand, error) {
	base, err := newOrderLifecycleCommand(orderID)
	if err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{base}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// ConfirmOrderCommandHandler handles order confirmation.
type ConfirmOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(orders ports.OrderRepository) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{orders: orders}
}

// Handle confirms the order and persists the result.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionOrder(ctx, h.orders, cmd.OrderID(), (*order.Order).Confirm)
}

// ShipOrderCommand represents a request to ship a confirmed order.
type ShipOrderCommand struct{ orderLifecycleCommand }

// NewShipOrderCommand creates a command to ship an order.
func NewShipOrderCommand(orderID kernel.UUID) (ShipOrderCommand, error) {
	base, err := newOrderLifecycleCommand(orderID)
	if err != nil {
		return ShipOrderCommand{}, err
	}

	return ShipOrderCommand{base}, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// ShipOrderCommandHandler handles order shipping.
type ShipOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewShipOrderCommandHandler creates a handler for order shipping.
func NewShipOrderCommandHandler(orders ports.OrderRepository) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{orders: orders}
}

// Handle ships the order and persists the result.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionOrder(ctx, h.orders, cmd.OrderID(), (*order.Order).Ship)
}

// DeliverOrderCommand represents a request to mark a shipped order delivered.
type DeliverOrderCommand struct{ orderLifecycleCommand }

// NewDeliverOrderCommand creates a command to deliver an order.
func NewDeliverOrderCommand(orderID kernel.UUID) (DeliverOrderCommand, error) {
	base, err := newOrderLifecycleCommand(orderID)
	if err != nil {
		return DeliverOrderCommand{}, err
	}

	return DeliverOrderCommand{base}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// DeliverOrderCommandHandler handles order delivery.
type DeliverOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(orders ports.OrderRepository) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{orders: orders}
}

// Handle delivers the order and persists the result.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionOrder(ctx, h.orders, cmd.OrderID(), (*order.Order).Deliver)
}

// CancelOrderCommand represents a request to cancel an order that has not
// shipped yet.
type CancelOrderCommand struct{ orderLifecycleCommand }

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	base, err := newOrderLifecycleCommand(orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{base}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// CancelOrderCommandHandler handles order cancellation.
type CancelOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(orders ports.OrderRepository) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{orders: orders}
}

// Handle cancels the order and persists the result.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionOrder(ctx, h.orders, cmd.OrderID(), (*order.Order).Cancel)
}
