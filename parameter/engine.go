package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the fixed post-render delay between simulation ticks
	// Not latency-compensated: a slow render does not shorten the next sleep
	TickInterval = 150 * time.Millisecond

	// InputQueueSize is the buffered capacity between the terminal poller and the loop
	InputQueueSize = 64
)

// Placement Oracle
const (
	// PlacementAttemptFactor bounds rejection sampling at Capacity*factor draws
	// before falling back to indexed selection among free cells
	PlacementAttemptFactor = 4
)
