// Package userrepo provides the in-memory user store.
package userrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"
)

// InMemoryUserRepository implements ports.UserRepository over an
// RWMutex-guarded map with upsert semantics.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[kernel.UUID]*user.User
}

// NewInMemoryUserRepository creates an empty user store.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[kernel.UUID]*user.User),
	}
}

// Get retrieves a user by id, active or not.
func (r *InMemoryUserRepository) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.users[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user id", id)
	}

	return aggregate, nil
}

// GetByUsername retrieves a user by login name, case-insensitively.
func (r *InMemoryUserRepository) GetByUsername(_ context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, aggregate := range r.users {
		if strings.EqualFold(aggregate.Username(), username) {
			return aggregate, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("username", username)
}

// GetAll retrieves every user sorted by username.
func (r *InMemoryUserRepository) GetAll(_ context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregates := make([]*user.User, 0, len(r.users))
	for _, aggregate := range r.users {
		aggregates = append(aggregates, aggregate)
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].Username() < aggregates[j].Username()
	})
	return aggregates, nil
}

// Save upserts the user by id.
func (r *InMemoryUserRepository) Save(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[aggregate.ID()] = aggregate
	return nil
}
