package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
)

// GetAllUsers handles GET /api/v1/users.
//
//	@Summary	List active user accounts
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	UserResponse
//	@Router		/users [get]
func (s *Server) GetAllUsers(ctx echo.Context) error {
	models, err := s.handlers.GetAllUsers.Handle(ctx.Request().Context(), queries.NewGetAllUsersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UserResponse, len(models))
	for i, model := range models {
		response[i] = fromUserReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserByID handles GET /api/v1/users/:id.
//
//	@Summary	Get one user account
//	@Tags		users
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/users/{id} [get]
func (s *Server) GetUserByID(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.handlers.GetUserByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromUserReadModel(model))
}

// CreateUser handles POST /api/v1/users.
//
//	@Summary	Create a user account
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	UserResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/users [post]
func (s *Server) CreateUser(ctx echo.Context) error {
	var request createUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateUserCommand(
		request.Username, request.Email, request.FirstName, request.LastName,
		request.Role, request.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(created))
}

// UpdateUser handles PUT /api/v1/users/:id.
//
//	@Summary	Replace a user's identity fields
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/users/{id} [put]
func (s *Server) UpdateUser(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request updateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateUserCommand(
		id, request.Username, request.Email, request.FirstName, request.LastName)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.UpdateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(updated))
}

// ChangeUserRole handles PUT /api/v1/users/:id/role.
//
//	@Summary	Change a user's role
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/users/{id}/role [put]
func (s *Server) ChangeUserRole(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request changeRoleRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewChangeUserRoleCommand(id, request.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.ChangeUserRole.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(updated))
}

// DeleteUser handles DELETE /api/v1/users/:id.
//
//	@Summary	Deactivate a user account
//	@Tags		users
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/users/{id} [delete]
func (s *Server) DeleteUser(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteUserCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
