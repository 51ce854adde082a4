package services

import (
	"context"
	"time"
)

// BackoffPolicy controls the retry schedule of the provider client.
// Sleep is injectable so tests run without real delays.
type BackoffPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Sleep       func(ctx context.Context, d time.Duration) error
}

// DefaultBackoff matches the provider's documented rate-limit guidance:
// three attempts with exponential spacing.
func DefaultBackoff() BackoffPolicy {
	return BackoffPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		Sleep:       sleepContext,
	}
}

// Delay returns the wait before retrying after the given zero-based
// attempt, doubling each time up to MaxDelay.
func (p BackoffPolicy) Delay(attempt int) time.Duration {
	d := p.BaseDelay << uint(attempt)
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

func (p BackoffPolicy) sleep(ctx context.Context, d time.Duration) error {
	fn := p.Sleep
	if fn == nil {
		fn = sleepContext
	}
	return fn(ctx, d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
