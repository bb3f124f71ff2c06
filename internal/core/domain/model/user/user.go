// Package user contains the User aggregate: the back-office account record
// with role, bcrypt password hash and soft delete.
package user

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// DefaultRole is assigned when no role is provided at construction.
const DefaultRole = "User"

// User represents a back-office account. Username, email, first and last
// name are required; the role defaults to DefaultRole. The password hash is
// set separately by the auth plumbing and never leaves the aggregate in
// clear text.
type User struct {
	id           kernel.UUID
	username     string
	email        string
	firstName    string
	lastName     string
	role         string
	passwordHash string
	isActive     bool

	isConstructed bool
}

// NewUser creates an active User with a generated identity.
// An empty role falls back to DefaultRole.
func NewUser(username, email, firstName, lastName, role string) (*User, error) {
	if kernel.IsBlank(role) {
		role = DefaultRole
	}

	u := &User{
		id:            kernel.NewUUID(),
		role:          role,
		isActive:      true,
		isConstructed: true,
	}

	if err := u.setInfo(username, email, firstName, lastName); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was created through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns "<first> <last>".
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.firstName, u.lastName)
}

// Role returns the user's role.
func (u *User) Role() string {
	return u.role
}

// PasswordHash returns the stored bcrypt hash; empty if none was set.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsActive reports whether the account is active (not soft-deleted).
func (u *User) IsActive() bool {
	return u.isActive
}

// UpdateInfo replaces the user's identity fields, applying the same
// validation as construction. The role and password hash are untouched.
func (u *User) UpdateInfo(username, email, firstName, lastName string) error {
	return u.setInfo(username, email, firstName, lastName)
}

// ChangeRole replaces the user's role. The role must not be blank.
func (u *User) ChangeRole(newRole string) error {
	if kernel.IsBlank(newRole) {
		return errs.NewValueIsRequiredError("role")
	}

	u.role = newRole
	return nil
}

// SetPasswordHash stores an already hashed password. Hashing happens in the
// auth plumbing; the domain never sees the clear-text password.
func (u *User) SetPasswordHash(hash string) error {
	if kernel.IsBlank(hash) {
		return errs.NewValueIsRequiredError("password hash")
	}

	u.passwordHash = hash
	return nil
}

// SetActive implements kernel.Deactivatable. Unconditional and idempotent.
func (u *User) SetActive(active bool) {
	u.isActive = active
}

func (u *User) setInfo(username, email, firstName, lastName string) error {
	if kernel.IsBlank(username) {
		return errs.NewValueIsRequiredError("username")
	}

	if kernel.IsBlank(email) {
		return errs.NewValueIsRequiredError("email")
	}

	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			errors.New("email must contain an @ sign"),
		)
	}

	if kernel.IsBlank(firstName) {
		return errs.NewValueIsRequiredError("first name")
	}

	if kernel.IsBlank(lastName) {
		return errs.NewValueIsRequiredError("last name")
	}

	u.username = username
	u.email = email
	u.firstName = firstName
	u.lastName = lastName
	return nil
}
