package kernel

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when a Price instance was not created
// through the NewPrice factory method.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice constructor")

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// Price is an immutable value object representing a net amount together with
// its VAT rate. The gross amount and the VAT amount are derived, never stored.
//
// Price follows these invariants:
//   - The amount excluding tax is strictly positive
//   - The VAT rate is a percentage in [0, 100]
//
// All arithmetic is performed on exact decimals; a 25% discount on 100 yields
// exactly 75, never 74.999....
type Price struct {
	amountExcludingTax decimal.Decimal
	vatRate            decimal.Decimal

	guard ConstructorGuard
}

// NewPrice creates a Price from a net amount and a VAT rate percentage.
// Returns an error if the amount is not strictly positive or the rate is
// outside [0, 100].
func NewPrice(amountExcludingTax, vatRate decimal.Decimal) (Price, error) {
	if amountExcludingTax.LessThanOrEqual(decimal.Zero) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"amount excluding tax",
			fmt.Errorf("%s is not strictly positive", amountExcludingTax),
		)
	}

	if vatRate.IsNegative() || vatRate.GreaterThan(decimalHundred) {
		return Price{}, errs.NewValueIsOutOfRangeError("VAT rate", vatRate, 0, 100)
	}

	return Price{
		amountExcludingTax: amountExcludingTax,
		vatRate:            vatRate,
		guard:              NewConstructorGuard(),
	}, nil
}

// Validate ensures the Price was created through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// AmountExcludingTax returns the net amount.
func (p Price) AmountExcludingTax() decimal.Decimal {
	return p.amountExcludingTax
}

// VATRate returns the VAT rate as a percentage in [0, 100].
func (p Price) VATRate() decimal.Decimal {
	return p.vatRate
}

// VATAmount returns the tax portion: amount * rate / 100.
func (p Price) VATAmount() decimal.Decimal {
	return p.amountExcludingTax.Mul(p.vatRate.Div(decimalHundred))
}

// AmountIncludingTax returns the gross amount: net amount plus VAT amount.
func (p Price) AmountIncludingTax() decimal.Decimal {
	return p.amountExcludingTax.Add(p.VATAmount())
}

// ApplyDiscount returns a new Price with the net amount reduced by the given
// percentage. The percentage must be in (0, 100] and the discounted amount
// must remain strictly positive.
func (p Price) ApplyDiscount(percentage decimal.Decimal) (Price, error) {
	if percentage.LessThanOrEqual(decimal.Zero) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"discount percentage",
			fmt.Errorf("%s must be greater than 0", percentage),
		)
	}

	if percentage.GreaterThan(decimalHundred) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"discount percentage",
			fmt.Errorf("%s cannot exceed 100", percentage),
		)
	}

	newAmount := p.amountExcludingTax.Mul(decimalOne.Sub(percentage.Div(decimalHundred)))
	if newAmount.LessThanOrEqual(decimal.Zero) {
		return Price{}, errs.NewValueIsInvalidError("discounted amount must remain strictly positive")
	}

	return NewPrice(newAmount, p.vatRate)
}

// WithVATRate returns a new Price with the same net amount and a new VAT rate.
func (p Price) WithVATRate(vatRate decimal.Decimal) (Price, error) {
	return NewPrice(p.amountExcludingTax, vatRate)
}

// IsEqual compares two prices by value: same net amount and same VAT rate.
func (p Price) IsEqual(other Price) bool {
	return p.amountExcludingTax.Equal(other.amountExcludingTax) && p.vatRate.Equal(other.vatRate)
}

// String renders the price as "<net> excl. tax (VAT <rate>%) = <gross> incl. tax".
func (p Price) String() string {
	return fmt.Sprintf("%s excl. tax (VAT %s%%) = %s incl. tax",
		p.amountExcludingTax, p.vatRate, p.AmountIncludingTax())
}
