package queries

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var (
	ErrGetAllUsersQueryIsNotConstructed = errors.New(
		"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
	)
	ErrGetUserByIDQueryIsNotConstructed = errors.New(
		"GetUserByIDQuery must be created via NewGetUserByIDQuery constructor",
	)
)

// UserResponse is the account read model. The password hash never leaves
// the domain through the read side.
type UserResponse struct {
	ID        kernel.UUID
	Username  string
	Email     string
	FirstName string
	LastName  string
	FullName  string
	Role      string
	IsActive  bool
}

func toUserResponse(aggregate *user.User) UserResponse {
	return UserResponse{
		ID:        aggregate.ID(),
		Username:  aggregate.Username(),
		Email:     aggregate.Email(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		FullName:  aggregate.FullName(),
		Role:      aggregate.Role(),
		IsActive:  aggregate.IsActive(),
	}
}

// GetAllUsersQuery retrieves active accounts. Soft deleted accounts are
// hidden.
type GetAllUsersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllUsersQuery creates a query to list active accounts.
func NewGetAllUsersQuery() GetAllUsersQuery {
	return GetAllUsersQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}

// GetAllUsersQueryHandler serves account listings.
type GetAllUsersQueryHandler struct {
	users ports.UserRepository
}

// NewGetAllUsersQueryHandler creates a handler for account listings.
func NewGetAllUsersQueryHandler(users ports.UserRepository) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{users: users}
}

// Handle returns all active accounts as read models.
func (h GetAllUsersQueryHandler) Handle(ctx context.Context, query GetAllUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if !aggregate.IsActive() {
			continue
		}

		responses = append(responses, toUserResponse(aggregate))
	}

	return responses, nil
}

// GetUserByIDQuery retrieves a single account by id.
type GetUserByIDQuery struct {
	userID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetUserByIDQuery creates a query for one account.
func NewGetUserByIDQuery(userID kernel.UUID) (GetUserByIDQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	return GetUserByIDQuery{
		userID: userID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByIDQueryIsNotConstructed)
}

// UserID returns the requested account's identifier.
func (q GetUserByIDQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserByIDQueryHandler serves single account lookups.
type GetUserByIDQueryHandler struct {
	users ports.UserRepository
}

// NewGetUserByIDQueryHandler creates a handler for account lookups.
func NewGetUserByIDQueryHandler(users ports.UserRepository) GetUserByIDQueryHandler {
	return GetUserByIDQueryHandler{users: users}
}

// Handle returns the account or errs.ObjectNotFoundError.
func (h GetUserByIDQueryHandler) Handle(ctx context.Context, query GetUserByIDQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	aggregate, err := h.users.Get(ctx, query.UserID())
	if err != nil {
		return UserResponse{}, err
	}

	return toUserResponse(aggregate), nil
}
