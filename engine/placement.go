package engine

import (
	"errors"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/vmath"
)

// ErrNoSpace is returned when every board cell is excluded
var ErrNoSpace = errors.New("no free cell on board")

// Placer finds free cells for food and obstacles by uniform rejection sampling
type Placer struct {
	board Board
	rng   *vmath.FastRand
}

// NewPlacer creates a placer drawing from rng
func NewPlacer(b Board, rng *vmath.FastRand) *Placer {
	return &Placer{board: b, rng: rng}
}

// Place returns a uniformly random cell not in excluded
// Rejection sampling is capped at Capacity*PlacementAttemptFactor draws; past that
// the k-th free cell is chosen by index with k uniform, which keeps the distribution
// and bounds the cost on a nearly full board
func (p *Placer) Place(excluded *CellSet) (core.Point, error) {
	if excluded.Full() {
		return core.Point{}, ErrNoSpace
	}

	capacity := p.board.Capacity()
	maxAttempts := capacity * parameter.PlacementAttemptFactor
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := core.Point{
			X: p.rng.Intn(p.board.Width),
			Y: p.rng.Intn(p.board.Height),
		}
		if !excluded.Has(candidate) {
			return candidate, nil
		}
	}

	k := p.rng.Intn(capacity - excluded.Len())
	for idx := 0; idx < capacity; idx++ {
		pt := p.board.PointAt(idx)
		if excluded.Has(pt) {
			continue
		}
		if k == 0 {
			return pt, nil
		}
		k--
	}

	return core.Point{}, ErrNoSpace
}
