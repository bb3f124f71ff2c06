package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents a request to replace an account's identity
// fields. The role and password are untouched; they have their own
// commands.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	username  string
	email     string
	firstName string
	lastName  string

	guard kernel.ConstructorGuard
}

// NewUpdateUserCommand creates a command to update a user's identity fields.
func NewUpdateUserCommand(
	userID kernel.UUID,
	username, email, firstName, lastName string,
) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the target account's identifier.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the replacement login name.
func (c UpdateUserCommand) Username() string {
	return c.username
}

// Email returns the replacement email address.
func (c UpdateUserCommand) Email() string {
	return c.email
}

// FirstName returns the replacement first name.
func (c UpdateUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the replacement last name.
func (c UpdateUserCommand) LastName() string {
	return c.lastName
}

func (c *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserCommand) setUsername(username string) error {
	if kernel.IsBlank(username) {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

// UpdateUserCommandHandler handles account updates.
type UpdateUserCommandHandler struct {
	users ports.UserRepository
}

// NewUpdateUserCommandHandler creates a handler for user updates.
func NewUpdateUserCommandHandler(users ports.UserRepository) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{users: users}
}

// Handle loads the user, applies the new identity fields and persists the
// result. Renaming onto another account's username is rejected.
func (h UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.users.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if existing, err := h.users.GetByUsername(ctx, cmd.Username()); err == nil {
		if !existing.IsEqual(aggregate) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"username",
				errors.New("username is already taken"),
			)
		}
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err := aggregate.UpdateInfo(cmd.Username(), cmd.Email(), cmd.FirstName(), cmd.LastName()); err != nil {
		return nil, err
	}

	if err := h.users.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
