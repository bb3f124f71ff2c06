package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrToggleProductStatusCommandIsNotConstructed = errors.New(
	"ToggleProductStatusCommand must be created via NewToggleProductStatusCommand constructor",
)

// ToggleProductStatusCommand represents a request to activate or deactivate
// a product. The operation is unconditional and idempotent.
type ToggleProductStatusCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	isActive  bool

	guard kernel.ConstructorGuard
}

// NewToggleProductStatusCommand creates a command to set a product's active
// flag.
func NewToggleProductStatusCommand(productID kernel.UUID, isActive bool) (ToggleProductStatusCommand, error) {
	cmd := ToggleProductStatusCommand{
		isActive: isActive,
		guard:    kernel.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return ToggleProductStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleProductStatusCommand) Validate() error {
	return c.guard.Validate(ErrToggleProductStatusCommandIsNotConstructed)
}

// ProductID returns the target product's identifier.
func (c ToggleProductStatusCommand) ProductID() kernel.UUID {
	return c.productID
}

// IsActive returns the desired active flag.
func (c ToggleProductStatusCommand) IsActive() bool {
	return c.isActive
}

func (c *ToggleProductStatusCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product id", err)
	}

	c.productID = productID
	return nil
}

// ToggleProductStatusCommandHandler handles product activation toggles.
type ToggleProductStatusCommandHandler struct {
	products ports.ProductRepository
}

// NewToggleProductStatusCommandHandler creates a handler for status toggles.
func NewToggleProductStatusCommandHandler(products ports.ProductRepository) ToggleProductStatusCommandHandler {
	return ToggleProductStatusCommandHandler{products: products}
}

// Handle loads the product, sets the active flag and persists the result.
func (h ToggleProductStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleProductStatusCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	aggregate.ChangeIsActive(cmd.IsActive())

	if err := h.products.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
