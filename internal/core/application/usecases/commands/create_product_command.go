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

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the
// catalogue. An optional supplier can be attached at creation time.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       decimal.Decimal
	vatRate     decimal.Decimal
	supplierID  *kernel.UUID

	guard kernel.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product. Price and VAT
// rate invariants are enforced by the product aggregate; the command only
// requires a non-blank name. Pass nil for supplierID when the product has
// no supplier.
func NewCreateProductCommand(
	name, description string,
	price, vatRate decimal.Decimal,
	supplierID *kernel.UUID,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		price:       price,
		vatRate:     vatRate,
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setSupplierID(supplierID),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the net price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// VATRate returns the VAT percentage.
func (c CreateProductCommand) VATRate() decimal.Decimal {
	return c.vatRate
}

// SupplierID returns the optional supplier identifier; nil when absent.
func (c CreateProductCommand) SupplierID() *kernel.UUID {
	return c.supplierID
}

func (c *CreateProductCommand) setName(name string) error {
	if kernel.IsBlank(name) {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setSupplierID(supplierID *kernel.UUID) error {
	if supplierID == nil {
		return nil
	}

	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplier id", err)
	}

	c.supplierID = supplierID
	return nil
}

// CreateProductCommandHandler handles product creation.
type CreateProductCommandHandler struct {
	products  ports.ProductRepository
	suppliers ports.SupplierRepository
}

// NewCreateProductCommandHandler creates a handler for product creation.
// The supplier repository is consulted only when a supplier is attached.
func NewCreateProductCommandHandler(
	products ports.ProductRepository,
	suppliers ports.SupplierRepository,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{products: products, suppliers: suppliers}
}

// Handle creates the product, optionally links the supplier after checking
// it exists, and persists the result.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := product.NewProduct(cmd.Name(), cmd.Description(), cmd.Price(), cmd.VATRate())
	if err != nil {
		return nil, err
	}

	if supplierID := cmd.SupplierID(); supplierID != nil {
		if _, err := h.suppliers.Get(ctx, *supplierID); err != nil {
			return nil, err
		}

		if err := aggregate.AssignSupplier(*supplierID); err != nil {
			return nil, err
		}
	}

	if err := h.products.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
