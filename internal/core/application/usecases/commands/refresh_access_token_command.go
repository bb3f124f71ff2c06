package commands

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/jwtauth"
)

// Refresh failure sentinels. Unknown and revoked tokens are
// indistinguishable to the caller; expiry gets its own error so clients
// know to re-authenticate rather than retry.
var (
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

var ErrRefreshAccessTokenCommandIsNotConstructed = errors.New(
	"RefreshAccessTokenCommand must be created via NewRefreshAccessTokenCommand constructor",
)

// RefreshAccessTokenCommand represents a request to exchange a refresh
// token for a new token pair. The presented token is revoked on success so
// every refresh token is single use.
type RefreshAccessTokenCommand struct { //nolint:recvcheck //using for validation
	refreshToken string

	guard kernel.ConstructorGuard
}

// NewRefreshAccessTokenCommand creates a refresh command.
func NewRefreshAccessTokenCommand(refreshToken string) (RefreshAccessTokenCommand, error) {
	cmd := RefreshAccessTokenCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setRefreshToken(refreshToken); err != nil {
		return RefreshAccessTokenCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshAccessTokenCommand) Validate() error {
	return c.guard.Validate(ErrRefreshAccessTokenCommandIsNotConstructed)
}

// RefreshToken returns the presented opaque token.
func (c RefreshAccessTokenCommand) RefreshToken() string {
	return c.refreshToken
}

func (c *RefreshAccessTokenCommand) setRefreshToken(refreshToken string) error {
	if kernel.IsBlank(refreshToken) {
		return errs.NewValueIsRequiredError("refresh token")
	}

	c.refreshToken = refreshToken
	return nil
}

// RefreshAccessTokenCommandHandler rotates refresh tokens.
type RefreshAccessTokenCommandHandler struct {
	users          ports.UserRepository
	tokens         ports.RefreshTokenRepository
	issuer         *jwtauth.TokenIssuer
	refreshTTLDays int
}

// NewRefreshAccessTokenCommandHandler creates a handler for token refresh.
func NewRefreshAccessTokenCommandHandler(
	users ports.UserRepository,
	tokens ports.RefreshTokenRepository,
	issuer *jwtauth.TokenIssuer,
	refreshTTLDays int,
) RefreshAccessTokenCommandHandler {
	return RefreshAccessTokenCommandHandler{
		users:          users,
		tokens:         tokens,
		issuer:         issuer,
		refreshTTLDays: refreshTTLDays,
	}
}

// Handle looks up the presented token, checks it is still usable, revokes
// it and issues a fresh pair for the owning account. A disabled or deleted
// owner invalidates the token.
func (h RefreshAccessTokenCommandHandler) Handle(
	ctx context.Context,
	cmd RefreshAccessTokenCommand,
) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	stored, err := h.tokens.Get(ctx, cmd.RefreshToken())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthResult{}, ErrRefreshTokenInvalid
		}

		return AuthResult{}, err
	}

	now := time.Now().UTC()
	if stored.IsRevoked() {
		return AuthResult{}, ErrRefreshTokenInvalid
	}

	if !stored.IsValid(now) {
		return AuthResult{}, ErrRefreshTokenExpired
	}

	account, err := h.users.Get(ctx, stored.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthResult{}, ErrRefreshTokenInvalid
		}

		return AuthResult{}, err
	}

	if !account.IsActive() {
		return AuthResult{}, ErrAccountDisabled
	}

	if err := stored.Revoke("replaced by refresh"); err != nil {
		return AuthResult{}, err
	}

	if err := h.tokens.Save(ctx, stored); err != nil {
		return AuthResult{}, err
	}

	return issueTokenPair(ctx, h.tokens, h.issuer, h.refreshTTLDays, account)
}
