package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ChangeUserRoleCommand represents a request to move an account to another
// role. Roles are plain strings; the domain only requires them non-blank.
type ChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	newRole string

	guard kernel.ConstructorGuard
}

// NewChangeUserRoleCommand creates a command to change a user's role.
func NewChangeUserRoleCommand(userID kernel.UUID, newRole string) (ChangeUserRoleCommand, error) {
	cmd := ChangeUserRoleCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setNewRole(newRole),
	); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

// UserID returns the target account's identifier.
func (c ChangeUserRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// NewRole returns the replacement role.
func (c ChangeUserRoleCommand) NewRole() string {
	return c.newRole
}

func (c *ChangeUserRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	c.userID = userID
	return nil
}

func (c *ChangeUserRoleCommand) setNewRole(newRole string) error {
	if kernel.IsBlank(newRole) {
		return errs.NewValueIsRequiredError("role")
	}

	c.newRole = newRole
	return nil
}

// ChangeUserRoleCommandHandler handles role changes.
type ChangeUserRoleCommandHandler struct {
	users ports.UserRepository
}

// NewChangeUserRoleCommandHandler creates a handler for role changes.
func NewChangeUserRoleCommandHandler(users ports.UserRepository) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{users: users}
}

// Handle loads the user, applies the new role and persists the result.
func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.users.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.ChangeRole(cmd.NewRole()); err != nil {
		return nil, err
	}

	if err := h.users.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
