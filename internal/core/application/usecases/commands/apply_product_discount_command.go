package commands

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrApplyProductDiscountCommandIsNotConstructed = errors.New(
	"ApplyProductDiscountCommand must be created via NewApplyProductDiscountCommand constructor",
)

// ApplyProductDiscountCommand represents a request to discount a product's
// price by a percentage in (0, 100]. The percentage bounds and the
// resulting price are validated by the product aggregate.
type ApplyProductDiscountCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	percentage decimal.Decimal

	guard kernel.ConstructorGuard
}

// NewApplyProductDiscountCommand creates a command to discount a product.
func NewApplyProductDiscountCommand(
	productID kernel.UUID,
	percentage decimal.Decimal,
) (ApplyProductDiscountCommand, error) {
	cmd := ApplyProductDiscountCommand{
		percentage: percentage,
		guard:      kernel.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return ApplyProductDiscountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyProductDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyProductDiscountCommandIsNotConstructed)
}

// ProductID returns the target product's identifier.
func (c ApplyProductDiscountCommand) ProductID() kernel.UUID {
	return c.productID
}

// Percentage returns the discount percentage.
func (c ApplyProductDiscountCommand) Percentage() decimal.Decimal {
	return c.percentage
}

func (c *ApplyProductDiscountCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product id", err)
	}

	c.productID = productID
	return nil
}

// ApplyProductDiscountCommandHandler handles product discounts.
type ApplyProductDiscountCommandHandler struct {
	products ports.ProductRepository
}

// NewApplyProductDiscountCommandHandler creates a handler for discounts.
func NewApplyProductDiscountCommandHandler(products ports.ProductRepository) ApplyProductDiscountCommandHandler {
	return ApplyProductDiscountCommandHandler{products: products}
}

// Handle loads the product, applies the discount and persists the result.
func (h ApplyProductDiscountCommandHandler) Handle(
	ctx context.Context,
	cmd ApplyProductDiscountCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.ApplyDiscount(cmd.Percentage()); err != nil {
		return nil, err
	}

	if err := h.products.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
