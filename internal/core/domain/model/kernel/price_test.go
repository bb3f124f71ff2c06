package kernel_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewPrice(t *testing.T) {
	t.Run("should create valid price", func(t *testing.T) {
		p, err := kernel.NewPrice(d("100"), d("20"))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.AmountExcludingTax().Equal(d("100")))
		assert.True(t, p.VATRate().Equal(d("20")))
	})

	t.Run("should fail with zero amount", func(t *testing.T) {
		_, err := kernel.NewPrice(d("0"), d("20"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount excluding tax")
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewPrice(d("-5"), d("20"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not strictly positive")
	})

	t.Run("should fail with negative VAT rate", func(t *testing.T) {
		_, err := kernel.NewPrice(d("100"), d("-1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "VAT rate")
	})

	t.Run("should fail with VAT rate above 100", func(t *testing.T) {
		_, err := kernel.NewPrice(d("100"), d("100.01"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "VAT rate")
	})

	t.Run("should accept VAT rate boundaries", func(t *testing.T) {
		_, err := kernel.NewPrice(d("100"), d("0"))
		require.NoError(t, err)

		_, err = kernel.NewPrice(d("100"), d("100"))
		require.NoError(t, err)
	})
}

func TestPrice_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var p kernel.Price

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})
}

func TestPrice_Amounts(t *testing.T) {
	t.Run("should derive VAT and gross amounts exactly", func(t *testing.T) {
		p, err := kernel.NewPrice(d("100"), d("20"))

		require.NoError(t, err)
		assert.True(t, p.VATAmount().Equal(d("20")), "VAT amount was %s", p.VATAmount())
		assert.True(t, p.AmountIncludingTax().Equal(d("120")), "gross was %s", p.AmountIncludingTax())
	})

	t.Run("should handle fractional rates", func(t *testing.T) {
		p, err := kernel.NewPrice(d("200"), d("5.5"))

		require.NoError(t, err)
		assert.True(t, p.VATAmount().Equal(d("11")))
		assert.True(t, p.AmountIncludingTax().Equal(d("211")))
	})
}

func TestPrice_ApplyDiscount(t *testing.T) {
	t.Run("should reduce 100 by 25 percent to exactly 75", func(t *testing.T) {
		p, _ := kernel.NewPrice(d("100"), d("20"))

		discounted, err := p.ApplyDiscount(d("25"))

		require.NoError(t, err)
		assert.True(t, discounted.AmountExcludingTax().Equal(d("75")),
			"got %s", discounted.AmountExcludingTax())
		assert.True(t, discounted.VATRate().Equal(d("20")), "VAT rate must be preserved")
	})

	t.Run("should reduce 200 by 25 percent to exactly 150", func(t *testing.T) {
		p, _ := kernel.NewPrice(d("200"), d("20"))

		discounted, err := p.ApplyDiscount(d("25"))

		require.NoError(t, err)
		assert.True(t, discounted.AmountExcludingTax().Equal(d("150")))
	})

	t.Run("should compose two 10 percent discounts to 81 not 80", func(t *testing.T) {
		p, _ := kernel.NewPrice(d("100"), d("20"))

		once, err := p.ApplyDiscount(d("10"))
		require.NoError(t, err)
		twice, err := once.ApplyDiscount(d("10"))
		require.NoError(t, err)

		assert.True(t, twice.AmountExcludingTax().Equal(d("81")),
			"got %s", twice.AmountExcludingTax())
	})

	t.Run("should not mutate the original price", func(t *testing.T) {
		p, _ := kernel.NewPrice(d("100"), d("20"))

		_, err := p.ApplyDiscount(d("50"))

		require.NoError(t, err)
		assert.True(t, p.AmountExcludingTax().Equal(d("100")))
	})

	t.Run("should fail for zero percentage", func(t *testing.T) {
		p, _ := kernel.NewPrice(d("100"), d("20"))

		_, err := p.ApplyDiscount(d("0"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be greater than 0")
	})

	t.Run("should fail for negative percentage", func(t *testing.T) {
		p, _ := kernel.NewPrice(d("100"), d("20"))

		_, err := p.ApplyDiscount(d("-10"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be greater than 0")
	})

	t.Run("should fail for percentage above 100 with a distinct message", func(t *testing.T) {
		p, _ := kernel.NewPrice(d("100"), d("20"))

		_, err := p.ApplyDiscount(d("100.5"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 100")
	})

	t.Run("should fail when discounted amount reaches zero", func(t *testing.T) {
		p, _ := kernel.NewPrice(d("100"), d("20"))

		_, err := p.ApplyDiscount(d("100"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "strictly positive")
	})
}

func TestPrice_WithVATRate(t *testing.T) {
	t.Run("should keep the net amount and change the rate", func(t *testing.T) {
		p, _ := kernel.NewPrice(d("100"), d("20"))

		changed, err := p.WithVATRate(d("5.5"))

		require.NoError(t, err)
		assert.True(t, changed.AmountExcludingTax().Equal(d("100")))
		assert.True(t, changed.VATRate().Equal(d("5.5")))
	})

	t.Run("should reject an out-of-range rate", func(t *testing.T) {
		p, _ := kernel.NewPrice(d("100"), d("20"))

		_, err := p.WithVATRate(d("120"))

		require.Error(t, err)
	})
}

func TestPrice_IsEqual(t *testing.T) {
	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.NewPrice(d("100"), d("20"))
		b, _ := kernel.NewPrice(d("100.00"), d("20"))
		c, _ := kernel.NewPrice(d("100"), d("10"))

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
