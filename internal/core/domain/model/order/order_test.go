package order_test

import (
	"regexp"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "123 Main St", "")
	require.NoError(t, err)
	return o
}

func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	require.NoError(t, o.UpdateTotals(d("100"), d("120")))
	require.NoError(t, o.Confirm())
	return o
}

func TestNewOrder(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("should create pending order with generated identity", func(t *testing.T) {
		before := time.Now().UTC()
		o, err := order.NewOrder(customerID, "123 Main St", "leave at the door")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		require.NoError(t, o.ID().Validate())
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "123 Main St", o.DeliveryAddress())
		assert.Equal(t, "leave at the door", o.Notes())
		assert.True(t, o.TotalAmountExcludingTax().IsZero())
		assert.True(t, o.TotalAmountIncludingTax().IsZero())
		assert.False(t, o.OrderDate().Before(before))
	})

	t.Run("should generate a well-formed order number", func(t *testing.T) {
		o, err := order.NewOrder(customerID, "123 Main St", "")

		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-\d{4}-[a-f0-9]{6}$`), o.OrderNumber())
		assert.True(t, order.IsWellFormedOrderNumber(o.OrderNumber()))
	})

	t.Run("should generate distinct ids and order numbers", func(t *testing.T) {
		first, err := order.NewOrder(customerID, "123 Main St", "")
		require.NoError(t, err)
		second, err := order.NewOrder(customerID, "123 Main St", "")
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
		assert.NotEqual(t, first.OrderNumber(), second.OrderNumber())
	})

	t.Run("should fail with missing customer id", func(t *testing.T) {
		var missing kernel.UUID

		o, err := order.NewOrder(missing, "123 Main St", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customer id")
	})

	t.Run("should fail with blank delivery address", func(t *testing.T) {
		o, err := order.NewOrder(customerID, "   ", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "delivery address")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var missing kernel.UUID

		o, err := order.NewOrder(missing, "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customer id")
		assert.Contains(t, err.Error(), "delivery address")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail for zero-value order", func(t *testing.T) {
		o := &order.Order{}

		require.Error(t, o.Validate())
	})
}

func TestOrder_UpdateTotals(t *testing.T) {
	t.Run("should replace both totals", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.UpdateTotals(d("100"), d("120"))

		require.NoError(t, err)
		assert.True(t, o.TotalAmountExcludingTax().Equal(d("100")))
		assert.True(t, o.TotalAmountIncludingTax().Equal(d("120")))
	})

	t.Run("should accept equal net and gross amounts", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.UpdateTotals(d("50"), d("50")))
	})

	t.Run("should fail with negative net amount", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.UpdateTotals(d("-1"), d("10"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("should fail when gross undercuts net", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.UpdateTotals(d("100"), d("99.99"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "greater than or equal")
	})

	t.Run("should fail on a cancelled order and keep totals", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.UpdateTotals(d("10"), d("12")))
		require.NoError(t, o.Cancel())

		err := o.UpdateTotals(d("100"), d("120"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot modify a cancelled order")
		assert.True(t, o.TotalAmountExcludingTax().Equal(d("10")))
		assert.True(t, o.TotalAmountIncludingTax().Equal(d("12")))
	})

	t.Run("should fail on a delivered order", func(t *testing.T) {
		o := confirmedOrder(t)
		require.NoError(t, o.Ship())
		require.NoError(t, o.Deliver())

		err := o.UpdateTotals(d("200"), d("240"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivered")
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should confirm a pending order with a positive total", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.UpdateTotals(d("100"), d("120")))

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should fail with zero total", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Confirm()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot confirm an order with no amount")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail when not pending", func(t *testing.T) {
		o := confirmedOrder(t)

		err := o.Confirm()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "only pending orders can be confirmed")
	})
}

func TestOrder_Ship(t *testing.T) {
	t.Run("should ship a confirmed order", func(t *testing.T) {
		o := confirmedOrder(t)

		require.NoError(t, o.Ship())
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("should fail on a pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Ship()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "only confirmed orders can be shipped")
	})
}

func TestOrder_Deliver(t *testing.T) {
	t.Run("should deliver a shipped order", func(t *testing.T) {
		o := confirmedOrder(t)
		require.NoError(t, o.Ship())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should fail before shipping", func(t *testing.T) {
		o := confirmedOrder(t)

		err := o.Deliver()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "only shipped orders can be delivered")
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should cancel a confirmed order", func(t *testing.T) {
		o := confirmedOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should fail on a shipped order", func(t *testing.T) {
		o := confirmedOrder(t)
		require.NoError(t, o.Ship())

		err := o.Cancel()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot cancel an already shipped order")
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("should fail on a delivered order", func(t *testing.T) {
		o := confirmedOrder(t)
		require.NoError(t, o.Ship())
		require.NoError(t, o.Deliver())

		err := o.Cancel()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot cancel an already delivered order")
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should be idempotent on an already cancelled order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_UpdateDeliveryAddress(t *testing.T) {
	t.Run("should change the address while pending", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.UpdateDeliveryAddress("456 Oak Avenue"))
		assert.Equal(t, "456 Oak Avenue", o.DeliveryAddress())
	})

	t.Run("should change the address while confirmed", func(t *testing.T) {
		o := confirmedOrder(t)

		require.NoError(t, o.UpdateDeliveryAddress("456 Oak Avenue"))
	})

	t.Run("should fail with a blank address", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.UpdateDeliveryAddress(" ")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivery address")
		assert.Equal(t, "123 Main St", o.DeliveryAddress())
	})

	t.Run("should fail once shipped", func(t *testing.T) {
		o := confirmedOrder(t)
		require.NoError(t, o.Ship())

		err := o.UpdateDeliveryAddress("456 Oak Avenue")

		require.Error(t, err)
		assert.Equal(t, "123 Main St", o.DeliveryAddress())
	})

	t.Run("should fail once cancelled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		require.Error(t, o.UpdateDeliveryAddress("456 Oak Avenue"))
	})
}

func TestOrder_FullLifecycle(t *testing.T) {
	t.Run("should run pending to delivered and preserve totals", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "123 Main St", "")
		require.NoError(t, err)

		require.NoError(t, o.UpdateTotals(d("100"), d("120")))
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Ship())
		require.NoError(t, o.Deliver())

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.TotalAmountExcludingTax().Equal(d("100")))
		assert.True(t, o.TotalAmountIncludingTax().Equal(d("120")))

		require.Error(t, o.Cancel())
	})
}
