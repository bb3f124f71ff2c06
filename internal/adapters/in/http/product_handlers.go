package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// GetAllProducts handles GET /api/v1/products.
//
//	@Summary	List active products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products [get]
func (s *Server) GetAllProducts(ctx echo.Context) error {
	models, err := s.handlers.GetAllProducts.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ProductResponse, len(models))
	for i, model := range models {
		response[i] = fromProductReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProductByID handles GET /api/v1/products/:id.
//
//	@Summary	Get one product
//	@Tags		products
//	@Produce	json
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (s *Server) GetProductByID(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetProductByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.handlers.GetProductByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromProductReadModel(model))
}

// CreateProduct handles POST /api/v1/products.
//
//	@Summary	Add a product to the catalogue
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/products [post]
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request createProductRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	var supplierID *kernel.UUID
	if request.SupplierID != nil {
		parsed, err := kernel.UUIDFromString(*request.SupplierID)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("supplier id", err))
		}
		supplierID = &parsed
	}

	cmd, err := commands.NewCreateProductCommand(
		request.Name, request.Description, request.Price, request.VATRate, supplierID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProductResponse(created))
}

// ChangeProductPrice handles PUT /api/v1/products/:id/price.
//
//	@Summary	Set a product's net price
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/products/{id}/price [put]
func (s *Server) ChangeProductPrice(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request changePriceRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewChangeProductPriceCommand(id, request.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.ChangeProductPrice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(updated))
}

// ApplyProductDiscount handles POST /api/v1/products/:id/discount.
//
//	@Summary	Discount a product by a percentage
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/products/{id}/discount [post]
func (s *Server) ApplyProductDiscount(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request applyDiscountRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewApplyProductDiscountCommand(id, request.Percentage)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.ApplyProductDiscount.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(updated))
}

// ToggleProductStatus handles PUT /api/v1/products/:id/status.
//
//	@Summary	Activate or deactivate a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id}/status [put]
func (s *Server) ToggleProductStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request toggleStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewToggleProductStatusCommand(id, request.IsActive)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.ToggleProductStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(updated))
}

// DeleteProduct handles DELETE /api/v1/products/:id.
//
//	@Summary	Soft delete a product
//	@Tags		products
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
