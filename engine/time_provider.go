package engine

import (
	"context"
	"time"
)

// Sleeper paces the loop between ticks
type Sleeper interface {
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case
	Sleep(ctx context.Context, d time.Duration) error
}

// TimeProvider sleeps on the real system clock
type TimeProvider struct{}

// NewTimeProvider creates a new wall-clock sleeper
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Sleep waits for d unless the context is cancelled first
func (p *TimeProvider) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
