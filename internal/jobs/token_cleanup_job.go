package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"backoffice/internal/core/application/usecases/commands"
)

// TokenCleanupJob periodically purges expired refresh tokens so the store
// does not grow without bound.
type TokenCleanupJob struct {
	handler commands.PurgeExpiredTokensCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTokenCleanupJob creates a job that purges expired refresh tokens once
// per hour.
func NewTokenCleanupJob(handler commands.PurgeExpiredTokensCommandHandler, logger *slog.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "token_cleanup_job"),
	}
}

// Start schedules the cleanup to run at the top of every hour.
func (j *TokenCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPurgeExpiredTokensCommand()

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Token cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged expired refresh tokens", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *TokenCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token cleanup job stopped")
}
