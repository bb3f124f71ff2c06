package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewUUID(), "12 Harbour Lane", "")
	require.NoError(t, err)
	require.NoError(t, aggregate.UpdateTotals(d("100"), d("120")))
	return aggregate
}

func Test_NewCreateOrderCommand(t *testing.T) {
	t.Run("should fail without a customer id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "12 Harbour Lane", "")
		assert.Error(t, err)
	})

	t.Run("should fail with a blank delivery address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "   ", "")
		assert.Error(t, err)
	})
}

func Test_CreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should create and persist a pending order", func(t *testing.T) {
		customerID := kernel.NewUUID()
		cmd, err := commands.NewCreateOrderCommand(customerID, "12 Harbour Lane", "ring twice")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

		h := commands.NewCreateOrderCommandHandler(repo)
		created, err := h.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, order.Pending, created.Status())
		assert.True(t, customerID.IsEqual(created.CustomerID()))
		assert.Equal(t, "ring twice", created.Notes())
		repo.AssertExpectations(t)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		h := commands.NewCreateOrderCommandHandler(new(MockOrderRepository))
		_, err := h.Handle(ctx, commands.CreateOrderCommand{})
		assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})

	t.Run("should propagate save failures", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "12 Harbour Lane", "")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("store closed")).Once()

		h := commands.NewCreateOrderCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)
		assert.Error(t, err)
	})
}

func Test_UpdateOrderTotalsCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should update both totals", func(t *testing.T) {
		aggregate := pendingOrder(t)
		cmd, err := commands.NewUpdateOrderTotalsCommand(aggregate.ID(), d("250"), d("300"))
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		repo.On("Save", ctx, aggregate).Return(nil).Once()

		h := commands.NewUpdateOrderTotalsCommandHandler(repo)
		updated, err := h.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.True(t, d("250").Equal(updated.TotalAmountExcludingTax()))
		assert.True(t, d("300").Equal(updated.TotalAmountIncludingTax()))
		repo.AssertExpectations(t)
	})

	t.Run("should surface missing orders", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cmd, err := commands.NewUpdateOrderTotalsCommand(orderID, d("250"), d("300"))
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order id", orderID)).Once()

		h := commands.NewUpdateOrderTotalsCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should not save when the domain rejects the totals", func(t *testing.T) {
		aggregate := pendingOrder(t)
		cmd, err := commands.NewUpdateOrderTotalsCommand(aggregate.ID(), d("300"), d("250"))
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

		h := commands.NewUpdateOrderTotalsCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func Test_OrderLifecycleCommandHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("should confirm a pending order", func(t *testing.T) {
		aggregate := pendingOrder(t)
		cmd, err := commands.NewConfirmOrderCommand(aggregate.ID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		repo.On("Save", ctx, aggregate).Return(nil).Once()

		h := commands.NewConfirmOrderCommandHandler(repo)
		confirmed, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, confirmed.Status())
		repo.AssertExpectations(t)
	})

	t.Run("should walk an order to delivered", func(t *testing.T) {
		aggregate := pendingOrder(t)
		require.NoError(t, aggregate.Confirm())

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Twice()
		repo.On("Save", ctx, aggregate).Return(nil).Twice()

		shipCmd, err := commands.NewShipOrderCommand(aggregate.ID())
		require.NoError(t, err)
		shipHandler := commands.NewShipOrderCommandHandler(repo)
		_, err = shipHandler.Handle(ctx, shipCmd)
		require.NoError(t, err)

		deliverCmd, err := commands.NewDeliverOrderCommand(aggregate.ID())
		require.NoError(t, err)
		deliverHandler := commands.NewDeliverOrderCommandHandler(repo)
		delivered, err := deliverHandler.Handle(ctx, deliverCmd)
		require.NoError(t, err)

		assert.Equal(t, order.Delivered, delivered.Status())
		repo.AssertExpectations(t)
	})

	t.Run("should not save a rejected transition", func(t *testing.T) {
		aggregate := pendingOrder(t)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

		cmd, err := commands.NewShipOrderCommand(aggregate.ID())
		require.NoError(t, err)

		h := commands.NewShipOrderCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)
		assert.Error(t, err)
		assert.Equal(t, order.Pending, aggregate.Status())
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should cancel a confirmed order", func(t *testing.T) {
		aggregate := pendingOrder(t)
		require.NoError(t, aggregate.Confirm())

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		repo.On("Save", ctx, aggregate).Return(nil).Once()

		cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
		require.NoError(t, err)

		h := commands.NewCancelOrderCommandHandler(repo)
		cancelled, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, cancelled.Status())
	})
}

func Test_UpdateDeliveryAddressCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should update the address of a pending order", func(t *testing.T) {
		aggregate := pendingOrder(t)
		cmd, err := commands.NewUpdateDeliveryAddressCommand(aggregate.ID(), "7 Quay Street")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		repo.On("Save", ctx, aggregate).Return(nil).Once()

		h := commands.NewUpdateDeliveryAddressCommandHandler(repo)
		updated, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "7 Quay Street", updated.DeliveryAddress())
	})

	t.Run("should reject a blank address at construction", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryAddressCommand(kernel.NewUUID(), " ")
		assert.Error(t, err)
	})

	t.Run("should not change the address of a shipped order", func(t *testing.T) {
		aggregate := pendingOrder(t)
		require.NoError(t, aggregate.Confirm())
		require.NoError(t, aggregate.Ship())

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

		cmd, err := commands.NewUpdateDeliveryAddressCommand(aggregate.ID(), "7 Quay Street")
		require.NoError(t, err)

		h := commands.NewUpdateDeliveryAddressCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)
		assert.Error(t, err)
		assert.Equal(t, "12 Harbour Lane", aggregate.DeliveryAddress())
	})
}
