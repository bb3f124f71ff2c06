package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/auth"
	"backoffice/internal/core/domain/model/kernel"
)

// RefreshTokenRepository defines the persistence contract for refresh tokens.
// Tokens are looked up by their opaque string value rather than by id since
// that is the only handle a client ever presents.
type RefreshTokenRepository interface {
	// Get retrieves a refresh token by its opaque value.
	// Returns errs.ObjectNotFoundError when the token is unknown.
	Get(ctx context.Context, token string) (*auth.RefreshToken, error)

	// GetAllForUser retrieves every token issued to the given user,
	// revoked and expired ones included.
	GetAllForUser(ctx context.Context, userID kernel.UUID) ([]*auth.RefreshToken, error)

	// Save upserts the refresh token by id.
	Save(ctx context.Context, aggregate *auth.RefreshToken) error

	// DeleteExpired removes every token whose expiration lies before the
	// given instant and returns the number of tokens removed.
	DeleteExpired(ctx context.Context, before time.Time) (int, error)
}
