package commands

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
)

var ErrPurgeExpiredTokensCommandIsNotConstructed = errors.New(
	"PurgeExpiredTokensCommand must be created via NewPurgeExpiredTokensCommand constructor",
)

// PurgeExpiredTokensCommand triggers removal of refresh tokens whose
// expiry has passed. Revoked but unexpired tokens are kept so reuse of a
// rotated token can still be detected.
type PurgeExpiredTokensCommand struct { //nolint:recvcheck //using for validation
	guard kernel.ConstructorGuard
}

// NewPurgeExpiredTokensCommand creates a parameterless purge command.
func NewPurgeExpiredTokensCommand() PurgeExpiredTokensCommand {
	return PurgeExpiredTokensCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredTokensCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredTokensCommandIsNotConstructed)
}

// PurgeExpiredTokensCommandHandler handles expired token cleanup.
type PurgeExpiredTokensCommandHandler struct {
	tokens ports.RefreshTokenRepository
}

// NewPurgeExpiredTokensCommandHandler creates a handler for token cleanup.
func NewPurgeExpiredTokensCommandHandler(tokens ports.RefreshTokenRepository) PurgeExpiredTokensCommandHandler {
	return PurgeExpiredTokensCommandHandler{tokens: tokens}
}

// Handle removes every token that expired before now and reports how many
// were deleted.
func (h PurgeExpiredTokensCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredTokensCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.tokens.DeleteExpired(ctx, time.Now().UTC())
}
