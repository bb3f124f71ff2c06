// Package product contains the Product aggregate and its pricing invariant:
// the price of every priced product is strictly positive, and price mutation
// is rejected while the product is inactive.
package product

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or NewDraft.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or NewDraft constructor")

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// Product represents a catalog product.
//
// Product follows these invariants:
//   - The price is strictly positive for every priced product
//   - The VAT rate is a percentage in [0, 100]
//   - Price mutation is rejected while the product is inactive
//
// Construction is two-phase: NewProduct validates everything up front, while
// NewDraft produces an explicit zero-priced draft that only a successful
// UpdatePrice call makes sellable. A draft is a legitimate bootstrap state,
// not a loophole in the invariant: no mutation path ever produces a
// non-positive price.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name and description are free text, never nil, possibly empty for drafts
	name        string
	description string

	// price is the net unit price; zero only for drafts
	price decimal.Decimal

	// vatRate is the VAT percentage in [0, 100]
	vatRate decimal.Decimal

	// isActive is the soft-delete flag; price mutation requires it
	isActive bool

	// supplierID is the optional supplier reference (nil if unassigned)
	supplierID *kernel.UUID

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a fully priced, active Product.
// The price must be strictly positive and the VAT rate within [0, 100];
// the checks are delegated to the Price value object.
func NewProduct(name, description string, price, vatRate decimal.Decimal) (*Product, error) {
	if _, err := kernel.NewPrice(price, vatRate); err != nil {
		return nil, err
	}

	return &Product{
		id:            kernel.NewUUID(),
		name:          name,
		description:   description,
		price:         price,
		vatRate:       vatRate,
		isActive:      true,
		isConstructed: true,
	}, nil
}

// NewDraft creates an active, zero-priced draft product.
// A draft cannot be discounted or sold; the first UpdatePrice call turns it
// into a priced product.
func NewDraft() *Product {
	return &Product{
		id:            kernel.NewUUID(),
		price:         decimal.Zero,
		vatRate:       decimal.Zero,
		isActive:      true,
		isConstructed: true,
	}
}

// Validate ensures the Product instance was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the net unit price. Zero means the product is still a draft.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// VATRate returns the VAT percentage in [0, 100].
func (p *Product) VATRate() decimal.Decimal {
	return p.vatRate
}

// IsActive reports whether the product is active (not soft-deleted).
func (p *Product) IsActive() bool {
	return p.isActive
}

// IsDraft reports whether the product has not been priced yet.
func (p *Product) IsDraft() bool {
	return p.price.IsZero()
}

// SupplierID returns the assigned supplier's ID, or nil if unassigned.
func (p *Product) SupplierID() *kernel.UUID {
	return p.supplierID
}

// PriceBreakdown returns the product's price as a Price value object,
// exposing the derived VAT and gross amounts. Fails for drafts.
func (p *Product) PriceBreakdown() (kernel.Price, error) {
	return kernel.NewPrice(p.price, p.vatRate)
}

// UpdatePrice replaces the net unit price.
//
// Business rules:
//   - The new price must be strictly positive
//   - The product must be active
func (p *Product) UpdatePrice(newPrice decimal.Decimal) error {
	if newPrice.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			errors.New("price must be strictly positive"),
		)
	}

	if !p.isActive {
		return errs.NewValueIsInvalidErrorWithCause(
			"product",
			errors.New("product is not active"),
		)
	}

	p.price = newPrice
	return nil
}

// ApplyDiscount reduces the price by the given percentage (0 < pct <= 100).
// The discounted price is computed exactly (price * (1 - pct/100)) and must
// remain strictly positive; assignment and the active-product check are
// delegated to UpdatePrice.
func (p *Product) ApplyDiscount(percentage decimal.Decimal) error {
	if percentage.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount percentage",
			errors.New("discount percentage must be greater than 0"),
		)
	}

	if percentage.GreaterThan(decimalHundred) {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount percentage",
			errors.New("discount percentage cannot exceed 100"),
		)
	}

	newPrice := p.price.Mul(decimalOne.Sub(percentage.Div(decimalHundred)))

	// Only a full 100% discount can land here.
	if newPrice.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			errors.New("discounted price must remain strictly positive"),
		)
	}

	return p.UpdatePrice(newPrice)
}

// ChangeIsActive switches the active flag. No validation: deactivating an
// already inactive product is a no-op, same for activation.
func (p *Product) ChangeIsActive(isActive bool) {
	p.isActive = isActive
}

// SetActive implements kernel.Deactivatable.
func (p *Product) SetActive(active bool) {
	p.ChangeIsActive(active)
}

// AssignSupplier sets the optional supplier reference.
func (p *Product) AssignSupplier(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	p.supplierID = &supplierID
	return nil
}

// RemoveSupplier clears the supplier reference.
func (p *Product) RemoveSupplier() {
	p.supplierID = nil
}
