package order_test

import (
	"testing"

	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all five defined statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, s.Validate(), "status %s", s)
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Confirmed", order.Confirmed.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("should confirm only from pending", func(t *testing.T) {
		newStatus, err := order.Pending.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, newStatus)
	})

	t.Run("should fail from any other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Confirmed, order.Shipped, order.Delivered, order.Cancelled, order.Unknown,
		} {
			_, err := s.Confirm()

			require.Error(t, err, "status %s", s)
			assert.Contains(t, err.Error(), "only pending orders can be confirmed")
		}
	})
}

func TestStatus_Ship(t *testing.T) {
	t.Run("should ship only from confirmed", func(t *testing.T) {
		newStatus, err := order.Confirmed.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, newStatus)
	})

	t.Run("should fail from any other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Shipped, order.Delivered, order.Cancelled, order.Unknown,
		} {
			_, err := s.Ship()

			require.Error(t, err, "status %s", s)
			assert.Contains(t, err.Error(), "only confirmed orders can be shipped")
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should deliver only from shipped", func(t *testing.T) {
		newStatus, err := order.Shipped.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should fail from any other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Delivered, order.Cancelled, order.Unknown,
		} {
			_, err := s.Deliver()

			require.Error(t, err, "status %s", s)
			assert.Contains(t, err.Error(), "only shipped orders can be delivered")
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from pending and confirmed", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed} {
			newStatus, err := s.Cancel()

			require.NoError(t, err, "status %s", s)
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("should be idempotent from cancelled", func(t *testing.T) {
		newStatus, err := order.Cancelled.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should fail from delivered with its own message", func(t *testing.T) {
		_, err := order.Delivered.Cancel()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot cancel an already delivered order")
	})

	t.Run("should fail from shipped with its own message", func(t *testing.T) {
		_, err := order.Shipped.Cancel()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot cancel an already shipped order")
	})
}

func TestStatus_AllowsAddressChange(t *testing.T) {
	assert.True(t, order.Pending.AllowsAddressChange())
	assert.True(t, order.Confirmed.AllowsAddressChange())
	assert.False(t, order.Shipped.AllowsAddressChange())
	assert.False(t, order.Delivered.AllowsAddressChange())
	assert.False(t, order.Cancelled.AllowsAddressChange())
}
