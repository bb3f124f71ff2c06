package commands

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/auth"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/jwtauth"
)

// Auth failure sentinels. The transport layer maps these to 401 and 403;
// everything else about the failure stays internal so responses never leak
// whether the username or the password was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// AuthResult is the outcome of a successful login or refresh: a signed
// access token, an opaque refresh token and the authenticated user.
type AuthResult struct {
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *user.User
}

// LoginCommand represents an authentication attempt with username and
// password.
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard kernel.ConstructorGuard
}

// NewLoginCommand creates a login command. Both fields are required.
func NewLoginCommand(username, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Username returns the login name.
func (c LoginCommand) Username() string {
	return c.username
}

// Password returns the clear-text password.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setUsername(username string) error {
	if kernel.IsBlank(username) {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if kernel.IsBlank(password) {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

// LoginCommandHandler authenticates a user and issues a token pair.
type LoginCommandHandler struct {
	users          ports.UserRepository
	tokens         ports.RefreshTokenRepository
	issuer         *jwtauth.TokenIssuer
	refreshTTLDays int
}

// NewLoginCommandHandler creates a handler for login attempts.
func NewLoginCommandHandler(
	users ports.UserRepository,
	tokens ports.RefreshTokenRepository,
	issuer *jwtauth.TokenIssuer,
	refreshTTLDays int,
) LoginCommandHandler {
	return LoginCommandHandler{
		users:          users,
		tokens:         tokens,
		issuer:         issuer,
		refreshTTLDays: refreshTTLDays,
	}
}

// Handle verifies the credentials, rejects disabled accounts, and on
// success issues an access token plus a persisted refresh token. Unknown
// usernames and wrong passwords both come back as ErrInvalidCredentials.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	account, err := h.users.GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}

		return AuthResult{}, err
	}

	if !jwtauth.CheckPassword(account.PasswordHash(), cmd.Password()) {
		return AuthResult{}, ErrInvalidCredentials
	}

	if !account.IsActive() {
		return AuthResult{}, ErrAccountDisabled
	}

	return issueTokenPair(ctx, h.tokens, h.issuer, h.refreshTTLDays, account)
}

// issueTokenPair signs an access token for the account and persists a fresh
// refresh token. Shared by login and refresh.
func issueTokenPair(
	ctx context.Context,
	tokens ports.RefreshTokenRepository,
	issuer *jwtauth.TokenIssuer,
	refreshTTLDays int,
	account *user.User,
) (AuthResult, error) {
	now := time.Now().UTC()

	accessToken, err := issuer.Issue(jwtauth.Claims{
		Subject:  account.ID().String(),
		Name:     account.Username(),
		Email:    account.Email(),
		Role:     account.Role(),
		FullName: account.FullName(),
	}, now)
	if err != nil {
		return AuthResult{}, err
	}

	opaque, err := jwtauth.GenerateRefreshToken()
	if err != nil {
		return AuthResult{}, err
	}

	refreshToken, err := auth.NewRefreshToken(account.ID(), opaque, refreshTTLDays)
	if err != nil {
		return AuthResult{}, err
	}

	if err := tokens.Save(ctx, refreshToken); err != nil {
		return AuthResult{}, err
	}

	return AuthResult{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  now.Add(issuer.TTL()),
		RefreshToken:          refreshToken.Token(),
		RefreshTokenExpiresAt: refreshToken.ExpiresAt(),
		User:                  account,
	}, nil
}
