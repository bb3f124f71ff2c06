package commands

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrUpdateOrderTotalsCommandIsNotConstructed = errors.New(
	"UpdateOrderTotalsCommand must be created via NewUpdateOrderTotalsCommand constructor",
)

// UpdateOrderTotalsCommand represents a request to replace an order's net
// and gross totals. Amount invariants (non-negative net, gross not below
// net) are enforced by the order aggregate.
type UpdateOrderTotalsCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	amountExcludingTax decimal.Decimal
	amountIncludingTax decimal.Decimal

	guard kernel.ConstructorGuard
}

// NewUpdateOrderTotalsCommand creates a command to update order totals.
func NewUpdateOrderTotalsCommand(
	orderID kernel.UUID,
	amountExcludingTax, amountIncludingTax decimal.Decimal,
) (UpdateOrderTotalsCommand, error) {
	cmd := UpdateOrderTotalsCommand{
		amountExcludingTax: amountExcludingTax,
		amountIncludingTax: amountIncludingTax,
		guard:              kernel.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderTotalsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderTotalsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderTotalsCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderTotalsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AmountExcludingTax returns the new net total.
func (c UpdateOrderTotalsCommand) AmountExcludingTax() decimal.Decimal {
	return c.amountExcludingTax
}

// AmountIncludingTax returns the new gross total.
func (c UpdateOrderTotalsCommand) AmountIncludingTax() decimal.Decimal {
	return c.amountIncludingTax
}

func (c *UpdateOrderTotalsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	c.orderID = orderID
	return nil
}

// UpdateOrderTotalsCommandHandler handles order total updates.
type UpdateOrderTotalsCommandHandler struct {
	orders ports.OrderRepository
}

// NewUpdateOrderTotalsCommandHandler creates a handler for total updates.
func NewUpdateOrderTotalsCommandHandler(orders ports.OrderRepository) UpdateOrderTotalsCommandHandler {
	return UpdateOrderTotalsCommandHandler{orders: orders}
}

// Handle loads the order, applies the new totals and persists the result.
func (h UpdateOrderTotalsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderTotalsCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.UpdateTotals(cmd.AmountExcludingTax(), cmd.AmountIncludingTax()); err != nil {
		return nil, err
	}

	if err := h.orders.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
