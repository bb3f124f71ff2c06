package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents a request to soft delete an account.
// Deactivated accounts fail login but keep their history.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewDeleteUserCommand creates a command to soft delete a user.
func NewDeleteUserCommand(userID kernel.UUID) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return DeleteUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the target account's identifier.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeleteUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	c.userID = userID
	return nil
}

// DeleteUserCommandHandler handles account soft deletion.
type DeleteUserCommandHandler struct {
	users  ports.UserRepository
	tokens ports.RefreshTokenRepository
}

// NewDeleteUserCommandHandler creates a handler for user deletion.
func NewDeleteUserCommandHandler(
	users ports.UserRepository,
	tokens ports.RefreshTokenRepository,
) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{users: users, tokens: tokens}
}

// Handle loads the user, deactivates the account and revokes every refresh
// token still usable, so a deactivated account cannot keep a session alive.
func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.users.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	aggregate.SetActive(false)

	if err := h.users.Save(ctx, aggregate); err != nil {
		return err
	}

	issued, err := h.tokens.GetAllForUser(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	for _, token := range issued {
		if token.IsRevoked() {
			continue
		}
		if err := token.Revoke("account deactivated"); err != nil {
			return err
		}
		if err := h.tokens.Save(ctx, token); err != nil {
			return err
		}
	}

	return nil
}
