package engine

import (
	"context"
	"sync"
	"time"
)

// MockTimeProvider records sleeps without blocking, for tests
type MockTimeProvider struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

// NewMockTimeProvider creates a new recording sleeper
func NewMockTimeProvider() *MockTimeProvider {
	return &MockTimeProvider{}
}

// Sleep records d and returns immediately
func (m *MockTimeProvider) Sleep(ctx context.Context, d time.Duration) error {
	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	m.mu.Unlock()
	return ctx.Err()
}

// Sleeps returns a copy of the recorded durations
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}
