package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/jwtauth"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a back-office account.
// The clear-text password never reaches the domain; the handler hashes it
// before setting it on the aggregate.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	username  string
	email     string
	firstName string
	lastName  string
	role      string
	password  string

	guard kernel.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user. An empty role
// falls back to the domain default.
func NewCreateUserCommand(username, email, firstName, lastName, role, password string) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		role:      role,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Username returns the login name.
func (c CreateUserCommand) Username() string {
	return c.username
}

// Email returns the account email address.
func (c CreateUserCommand) Email() string {
	return c.email
}

// FirstName returns the account holder's first name.
func (c CreateUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the account holder's last name.
func (c CreateUserCommand) LastName() string {
	return c.lastName
}

// Role returns the requested role; empty means the domain default.
func (c CreateUserCommand) Role() string {
	return c.role
}

// Password returns the clear-text password.
func (c CreateUserCommand) Password() string {
	return c.password
}

func (c *CreateUserCommand) setUsername(username string) error {
	if kernel.IsBlank(username) {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if kernel.IsBlank(password) {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

// CreateUserCommandHandler handles account registration.
type CreateUserCommandHandler struct {
	users ports.UserRepository
}

// NewCreateUserCommandHandler creates a handler for user creation.
func NewCreateUserCommandHandler(users ports.UserRepository) CreateUserCommandHandler {
	return CreateUserCommandHandler{users: users}
}

// Handle creates the user with a hashed password and persists it.
// Usernames must be unique; the check is case-insensitive.
func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.users.GetByUsername(ctx, cmd.Username()); err == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"username",
			errors.New("username is already taken"),
		)
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	aggregate, err := user.NewUser(cmd.Username(), cmd.Email(), cmd.FirstName(), cmd.LastName(), cmd.Role())
	if err != nil {
		return nil, err
	}

	hash, err := jwtauth.HashPassword(cmd.Password())
	if err != nil {
		return nil, err
	}

	if err := aggregate.SetPasswordHash(hash); err != nil {
		return nil, err
	}

	if err := h.users.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
