package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
)

// Login handles POST /api/v1/auth/login.
//
//	@Summary	Authenticate with username and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	AuthResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/login [post]
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewLoginCommand(request.Username, request.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAuthResponse(result))
}

// RefreshAccessToken handles POST /api/v1/auth/refresh.
//
//	@Summary	Exchange a refresh token for a new token pair
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	AuthResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/refresh [post]
func (s *Server) RefreshAccessToken(ctx echo.Context) error {
	var request refreshRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRefreshAccessTokenCommand(request.RefreshToken)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.RefreshAccessToken.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAuthResponse(result))
}
