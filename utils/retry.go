package utils

import (
	"context"
	"fmt"
	"time"
)

// Retry runs fn up to maxRetries times, stopping at the first success.
// Between failed attempts it waits base, 2*base, 4*base... and gives up
// early when ctx is cancelled.
//
// Only infrastructure start-up uses this (the backend dialling its
// database). Listing requests from the app are never retried.
//
// Usage:
//
//	err := utils.Retry(ctx, 5, time.Second, func(ctx context.Context) error {
//	    return pool.Ping(ctx)
//	})
func Retry(ctx context.Context, maxRetries int, base time.Duration, fn func(context.Context) error) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt < maxRetries {
			wait := base * time.Duration(1<<uint(attempt-1))
			Warn("Attempt %d/%d failed: %v — retrying in %v", attempt, maxRetries, lastErr, wait)
			select {
			case <-ctx.Done():
				return fmt.Errorf("retry aborted after %d attempts: %w", attempt, ctx.Err())
			case <-time.After(wait):
			}
		}
	}

	return fmt.Errorf("all %d attempts failed — last error: %w", maxRetries, lastErr)
}
