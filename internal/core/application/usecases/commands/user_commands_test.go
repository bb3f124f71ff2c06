package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/auth"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/jwtauth"
)

func storedUser(t *testing.T) *user.User {
	t.Helper()

	aggregate, err := user.NewUser("jdoe", "jdoe@example.com", "Jo", "Doe", "")
	require.NoError(t, err)
	return aggregate
}

func Test_CreateUserCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a user with a hashed password", func(t *testing.T) {
		cmd, err := commands.NewCreateUserCommand("jdoe", "jdoe@example.com", "Jo", "Doe", "", "s3cret!")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetByUsername", ctx, "jdoe").
			Return(nil, errs.NewObjectNotFoundError("username", "jdoe")).Once()
		repo.On("Save", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once()

		h := commands.NewCreateUserCommandHandler(repo)
		created, err := h.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, user.DefaultRole, created.Role())
		assert.NotEqual(t, "s3cret!", created.PasswordHash())
		assert.True(t, jwtauth.CheckPassword(created.PasswordHash(), "s3cret!"))
		repo.AssertExpectations(t)
	})

	t.Run("should reject a taken username", func(t *testing.T) {
		existing := storedUser(t)
		cmd, err := commands.NewCreateUserCommand("jdoe", "other@example.com", "Jo", "Doe", "", "s3cret!")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetByUsername", ctx, "jdoe").Return(existing, nil).Once()

		h := commands.NewCreateUserCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should require a password", func(t *testing.T) {
		_, err := commands.NewCreateUserCommand("jdoe", "jdoe@example.com", "Jo", "Doe", "", " ")
		assert.Error(t, err)
	})
}

func Test_UpdateUserCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should replace the identity fields and keep the role", func(t *testing.T) {
		aggregate := storedUser(t)
		require.NoError(t, aggregate.ChangeRole("Admin"))

		cmd, err := commands.NewUpdateUserCommand(aggregate.ID(), "jdoe2", "jo@example.com", "Joan", "Doe")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		repo.On("GetByUsername", ctx, "jdoe2").
			Return(nil, errs.NewObjectNotFoundError("username", "jdoe2")).Once()
		repo.On("Save", ctx, aggregate).Return(nil).Once()

		h := commands.NewUpdateUserCommandHandler(repo)
		updated, err := h.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, "jdoe2", updated.Username())
		assert.Equal(t, "Joan Doe", updated.FullName())
		assert.Equal(t, "Admin", updated.Role())
	})

	t.Run("should allow keeping your own username", func(t *testing.T) {
		aggregate := storedUser(t)

		cmd, err := commands.NewUpdateUserCommand(aggregate.ID(), "jdoe", "jo@example.com", "Joan", "Doe")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		repo.On("GetByUsername", ctx, "jdoe").Return(aggregate, nil).Once()
		repo.On("Save", ctx, aggregate).Return(nil).Once()

		h := commands.NewUpdateUserCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)
		assert.NoError(t, err)
	})

	t.Run("should reject renaming onto another account", func(t *testing.T) {
		aggregate := storedUser(t)
		other, err := user.NewUser("taken", "taken@example.com", "Max", "Muster", "")
		require.NoError(t, err)

		cmd, err := commands.NewUpdateUserCommand(aggregate.ID(), "taken", "jo@example.com", "Joan", "Doe")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		repo.On("GetByUsername", ctx, "taken").Return(other, nil).Once()

		h := commands.NewUpdateUserCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func Test_ChangeUserRoleCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should change the role", func(t *testing.T) {
		aggregate := storedUser(t)

		cmd, err := commands.NewChangeUserRoleCommand(aggregate.ID(), "Manager")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		repo.On("Save", ctx, aggregate).Return(nil).Once()

		h := commands.NewChangeUserRoleCommandHandler(repo)
		updated, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "Manager", updated.Role())
	})

	t.Run("should reject a blank role at construction", func(t *testing.T) {
		aggregate := storedUser(t)
		_, err := commands.NewChangeUserRoleCommand(aggregate.ID(), " ")
		assert.Error(t, err)
	})
}

func Test_DeleteUserCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should soft delete the account and revoke its tokens", func(t *testing.T) {
		aggregate := storedUser(t)
		token, err := auth.NewRefreshToken(aggregate.ID(), "opaque-token", 7)
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		repo.On("Save", ctx, aggregate).Return(nil).Once()

		tokens := new(MockRefreshTokenRepository)
		tokens.On("GetAllForUser", ctx, aggregate.ID()).Return([]*auth.RefreshToken{token}, nil).Once()
		tokens.On("Save", ctx, token).Return(nil).Once()

		cmd, err := commands.NewDeleteUserCommand(aggregate.ID())
		require.NoError(t, err)

		h := commands.NewDeleteUserCommandHandler(repo, tokens)
		require.NoError(t, h.Handle(ctx, cmd))
		assert.False(t, aggregate.IsActive())
		assert.True(t, token.IsRevoked())
		assert.Equal(t, "account deactivated", token.RevokedReason())
	})

	t.Run("should leave already revoked tokens alone", func(t *testing.T) {
		aggregate := storedUser(t)
		token, err := auth.NewRefreshToken(aggregate.ID(), "opaque-token", 7)
		require.NoError(t, err)
		require.NoError(t, token.Revoke("replaced by refresh"))

		repo := new(MockUserRepository)
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		repo.On("Save", ctx, aggregate).Return(nil).Once()

		tokens := new(MockRefreshTokenRepository)
		tokens.On("GetAllForUser", ctx, aggregate.ID()).Return([]*auth.RefreshToken{token}, nil).Once()

		cmd, err := commands.NewDeleteUserCommand(aggregate.ID())
		require.NoError(t, err)

		h := commands.NewDeleteUserCommandHandler(repo, tokens)
		require.NoError(t, h.Handle(ctx, cmd))
		tokens.AssertNotCalled(t, "Save", ctx, token)
		assert.Equal(t, "replaced by refresh", token.RevokedReason())
	})
}
