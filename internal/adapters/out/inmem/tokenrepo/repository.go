// Package tokenrepo provides the in-memory refresh token store.
package tokenrepo

import (
	"context"
	"sync"
	"time"

	"backoffice/internal/core/domain/model/auth"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// InMemoryRefreshTokenRepository implements ports.RefreshTokenRepository.
// Tokens are keyed by their opaque string value, which is the only handle
// clients present.
type InMemoryRefreshTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*auth.RefreshToken
}

// NewInMemoryRefreshTokenRepository creates an empty token store.
func NewInMemoryRefreshTokenRepository() *InMemoryRefreshTokenRepository {
	return &InMemoryRefreshTokenRepository{
		tokens: make(map[string]*auth.RefreshToken),
	}
}

// Get retrieves a refresh token by its opaque value.
func (r *InMemoryRefreshTokenRepository) Get(_ context.Context, token string) (*auth.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.tokens[token]
	if !ok {
		return nil, errs.NewObjectNotFoundError("token", token)
	}

	return aggregate, nil
}

// GetAllForUser retrieves every token issued to one user, revoked and
// expired ones included.
func (r *InMemoryRefreshTokenRepository) GetAllForUser(
	_ context.Context,
	userID kernel.UUID,
) ([]*auth.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregates := make([]*auth.RefreshToken, 0)
	for _, aggregate := range r.tokens {
		if aggregate.UserID().IsEqual(userID) {
			aggregates = append(aggregates, aggregate)
		}
	}

	return aggregates, nil
}

// Save upserts the token by its opaque value.
func (r *InMemoryRefreshTokenRepository) Save(_ context.Context, aggregate *auth.RefreshToken) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[aggregate.Token()] = aggregate
	return nil
}

// DeleteExpired removes every token that expired before the given instant
// and returns how many were removed. Revoked but unexpired tokens stay for
// audit.
func (r *InMemoryRefreshTokenRepository) DeleteExpired(_ context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for token, aggregate := range r.tokens {
		if aggregate.ExpiresAt().Before(before) {
			delete(r.tokens, token)
			removed++
		}
	}

	return removed, nil
}
