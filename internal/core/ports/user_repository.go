package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	// Returns errs.ObjectNotFoundError when the id is absent.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by username. The lookup is
	// case-insensitive. Returns errs.ObjectNotFoundError when no
	// account matches.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetAll retrieves every stored user, active or not.
	GetAll(ctx context.Context) ([]*user.User, error)

	// Save upserts the user by id.
	Save(ctx context.Context, aggregate *user.User) error
}
