package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/application/usecases/commands"
)

func TestPurgeExpiredTokensCommand(t *testing.T) {
	t.Run("should reject a zero value command", func(t *testing.T) {
		var cmd commands.PurgeExpiredTokensCommand

		err := cmd.Validate()

		assert.ErrorIs(t, err, commands.ErrPurgeExpiredTokensCommandIsNotConstructed)
	})
}

func TestPurgeExpiredTokensCommandHandler(t *testing.T) {
	t.Run("should delete expired tokens and report the count", func(t *testing.T) {
		tokens := new(MockRefreshTokenRepository)
		tokens.On("DeleteExpired", mock.Anything, mock.MatchedBy(func(before time.Time) bool {
			return time.Since(before) < time.Minute
		})).Return(3, nil)
		handler := commands.NewPurgeExpiredTokensCommandHandler(tokens)

		removed, err := handler.Handle(context.Background(), commands.NewPurgeExpiredTokensCommand())

		require.NoError(t, err)
		assert.Equal(t, 3, removed)
		tokens.AssertExpectations(t)
	})

	t.Run("should surface repository failures", func(t *testing.T) {
		tokens := new(MockRefreshTokenRepository)
		tokens.On("DeleteExpired", mock.Anything, mock.Anything).Return(0, errors.New("store unavailable"))
		handler := commands.NewPurgeExpiredTokensCommandHandler(tokens)

		_, err := handler.Handle(context.Background(), commands.NewPurgeExpiredTokensCommand())

		assert.Error(t, err)
	})
}
