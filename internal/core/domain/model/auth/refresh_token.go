// Package auth contains the RefreshToken entity backing the JWT refresh flow.
//
// A refresh token has a trivial lifecycle: Active -> Revoked (terminal), or
// it simply expires by clock. Revocation records a reason so token abuse can
// be traced after the fact.
package auth

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// ErrRefreshTokenIsNotConstructed is returned when a RefreshToken instance
// was not created through the NewRefreshToken factory method.
var ErrRefreshTokenIsNotConstructed = errors.New("RefreshToken must be created via NewRefreshToken constructor")

// RefreshToken represents one issued refresh credential for a user.
type RefreshToken struct {
	id            kernel.UUID
	userID        kernel.UUID
	token         string
	createdAt     time.Time
	expiresAt     time.Time
	isRevoked     bool
	revokedReason string

	isConstructed bool
}

// NewRefreshToken creates a token for the given user, valid for
// expirationDays from now.
func NewRefreshToken(userID kernel.UUID, token string, expirationDays int) (*RefreshToken, error) {
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	if kernel.IsBlank(token) {
		return nil, errs.NewValueIsRequiredError("token")
	}

	if expirationDays <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"expiration days",
			fmt.Errorf("%d is not greater than 0", expirationDays),
		)
	}

	now := time.Now().UTC()
	return &RefreshToken{
		id:            kernel.NewUUID(),
		userID:        userID,
		token:         token,
		createdAt:     now,
		expiresAt:     now.AddDate(0, 0, expirationDays),
		isConstructed: true,
	}, nil
}

// Validate ensures the RefreshToken was created through NewRefreshToken.
func (t *RefreshToken) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrRefreshTokenIsNotConstructed
	}

	return nil
}

// ID returns the token entity's unique identifier.
func (t *RefreshToken) ID() kernel.UUID {
	return t.id
}

// UserID returns the owning user's identifier.
func (t *RefreshToken) UserID() kernel.UUID {
	return t.userID
}

// Token returns the opaque token string handed to the client.
func (t *RefreshToken) Token() string {
	return t.token
}

// CreatedAt returns the issuance timestamp (UTC).
func (t *RefreshToken) CreatedAt() time.Time {
	return t.createdAt
}

// ExpiresAt returns the expiry timestamp (UTC).
func (t *RefreshToken) ExpiresAt() time.Time {
	return t.expiresAt
}

// IsRevoked reports whether the token was explicitly revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.isRevoked
}

// RevokedReason returns why the token was revoked; empty while active.
func (t *RefreshToken) RevokedReason() string {
	return t.revokedReason
}

// IsValid reports whether the token can still be used at the given instant:
// not revoked and not expired.
func (t *RefreshToken) IsValid(now time.Time) bool {
	return !t.isRevoked && now.Before(t.expiresAt)
}

// Revoke marks the token as revoked with a reason. Revocation is terminal;
// revoking twice is an error.
func (t *RefreshToken) Revoke(reason string) error {
	if t.isRevoked {
		return errs.NewValueIsInvalidErrorWithCause(
			"refresh token",
			errors.New("token is already revoked"),
		)
	}

	t.isRevoked = true
	t.revokedReason = reason
	return nil
}
