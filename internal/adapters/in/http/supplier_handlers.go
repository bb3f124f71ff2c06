package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
)

// GetAllSuppliers handles GET /api/v1/suppliers.
//
//	@Summary	List active suppliers
//	@Tags		suppliers
//	@Produce	json
//	@Success	200	{array}	SupplierResponse
//	@Router		/suppliers [get]
func (s *Server) GetAllSuppliers(ctx echo.Context) error {
	models, err := s.handlers.GetAllSuppliers.Handle(ctx.Request().Context(), queries.NewGetAllSuppliersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SupplierResponse, len(models))
	for i, model := range models {
		response[i] = fromSupplierReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSupplierByID handles GET /api/v1/suppliers/:id.
//
//	@Summary	Get one supplier
//	@Tags		suppliers
//	@Produce	json
//	@Success	200	{object}	SupplierResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/suppliers/{id} [get]
func (s *Server) GetSupplierByID(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetSupplierByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.handlers.GetSupplierByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromSupplierReadModel(model))
}

// CreateSupplier handles POST /api/v1/suppliers.
//
//	@Summary	Register a supplier
//	@Tags		suppliers
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	SupplierResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/suppliers [post]
func (s *Server) CreateSupplier(ctx echo.Context) error {
	var request supplierRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateSupplierCommand(
		request.Name, request.Email, request.PhoneNumber, request.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateSupplier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toSupplierResponse(created))
}

// UpdateSupplier handles PUT /api/v1/suppliers/:id.
//
//	@Summary	Replace a supplier's contact information
//	@Tags		suppliers
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	SupplierResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/suppliers/{id} [put]
func (s *Server) UpdateSupplier(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request supplierRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateSupplierCommand(
		id, request.Name, request.Email, request.PhoneNumber, request.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.UpdateSupplier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSupplierResponse(updated))
}

// DeleteSupplier handles DELETE /api/v1/suppliers/:id.
//
//	@Summary	Soft delete a supplier
//	@Tags		suppliers
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/suppliers/{id} [delete]
func (s *Server) DeleteSupplier(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteSupplierCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteSupplier.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
