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

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand represents a request to set a product's net
// price. The aggregate rejects non-positive prices and inactive products.
type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	newPrice  decimal.Decimal

	guard kernel.ConstructorGuard
}

// NewChangeProductPriceCommand creates a command to change a product price.
func NewChangeProductPriceCommand(productID kernel.UUID, newPrice decimal.Decimal) (ChangeProductPriceCommand, error) {
	cmd := ChangeProductPriceCommand{
		newPrice: newPrice,
		guard:    kernel.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

// ProductID returns the target product's identifier.
func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

// NewPrice returns the replacement net price.
func (c ChangeProductPriceCommand) NewPrice() decimal.Decimal {
	return c.newPrice
}

func (c *ChangeProductPriceCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product id", err)
	}

	c.productID = productID
	return nil
}

// ChangeProductPriceCommandHandler handles product price changes.
type ChangeProductPriceCommandHandler struct {
	products ports.ProductRepository
}

// NewChangeProductPriceCommandHandler creates a handler for price changes.
func NewChangeProductPriceCommandHandler(products ports.ProductRepository) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{products: products}
}

// Handle loads the product, applies the new price and persists the result.
func (h ChangeProductPriceCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeProductPriceCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.UpdatePrice(cmd.NewPrice()); err != nil {
		return nil, err
	}

	if err := h.products.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
