package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
}

// retry runs operation until it succeeds, the attempts run out or ctx is done.
// The wait doubles after each failure and is capped at MaxInterval.
func retry(ctx context.Context, config RetryConfig, operation func() error, logger coreport.Logger) error {
	var err error
	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if attempt == config.MaxAttempts-1 {
			break
		}

		backoff := calculateBackoff(attempt, config)
		logger.Warn("Database operation failed, retrying", map[string]any{
			"attempt":     attempt + 1,
			"of":          config.MaxAttempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
	return err
}

// calculateBackoff computes RetryInterval * 2^attempt capped at MaxInterval
func calculateBackoff(attempt int, config RetryConfig) time.Duration {
	if attempt > 16 {
		attempt = 16
	}
	backoff := config.RetryInterval << uint(attempt)
	if config.MaxInterval > 0 && backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}
	return backoff
}
