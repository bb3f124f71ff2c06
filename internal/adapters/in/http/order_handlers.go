package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// GetAllOrders handles GET /api/v1/orders.
//
//	@Summary	List all orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	OrderResponse
//	@Router		/orders [get]
func (s *Server) GetAllOrders(ctx echo.Context) error {
	models, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(models))
	for i, model := range models {
		response[i] = fromOrderReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id.
//
//	@Summary	Get one order
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.handlers.GetOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromOrderReadModel(model))
}

// GetOrdersByCustomer handles GET /api/v1/customers/:id/orders.
//
//	@Summary	List the orders of one customer
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	OrderResponse
//	@Router		/customers/{id}/orders [get]
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByCustomerQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	models, err := s.handlers.GetOrdersByCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(models))
	for i, model := range models {
		response[i] = fromOrderReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary	Create an order in Pending status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("customer id", err))
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, request.DeliveryAddress, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// UpdateOrderTotals handles PUT /api/v1/orders/:id/totals.
//
//	@Summary	Replace an order's totals
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/orders/{id}/totals [put]
func (s *Server) UpdateOrderTotals(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request updateOrderTotalsRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderTotalsCommand(id, request.AmountExcludingTax, request.AmountIncludingTax)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.UpdateOrderTotals.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// UpdateDeliveryAddress handles PUT /api/v1/orders/:id/address.
//
//	@Summary	Change an order's delivery address
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/orders/{id}/address [put]
func (s *Server) UpdateDeliveryAddress(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request updateDeliveryAddressRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryAddressCommand(id, request.DeliveryAddress)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.UpdateDeliveryAddress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
//
//	@Summary	Confirm a pending order
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/orders/{id}/confirm [post]
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
//
//	@Summary	Ship a confirmed order
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/orders/{id}/ship [post]
func (s *Server) ShipOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewShipOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.ShipOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
//
//	@Summary	Mark a shipped order delivered
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/orders/{id}/deliver [post]
func (s *Server) DeliverOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
//
//	@Summary	Cancel an order that has not shipped
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/orders/{id}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}
