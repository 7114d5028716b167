package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/status"
)

// Telemetry records loop activity into a status registry
// Pointers are cached at construction; updates are lock-free
type Telemetry struct {
	statTicks    *atomic.Int64
	statFood     *atomic.Int64
	statGames    *atomic.Int64
	statEnds     *atomic.Int64
	statBest     *atomic.Int64
	statScore    *atomic.Int64
	statLength   *atomic.Int64
	statOver     *atomic.Bool
	statPhase    *status.Label
	statLastKill *status.Label
}

// NewTelemetry registers the snake metrics in reg
func NewTelemetry(reg *status.Registry) *Telemetry {
	return &Telemetry{
		statTicks:    reg.Int("tick.count"),
		statFood:     reg.Int("food.eaten"),
		statGames:    reg.Int("game.count"),
		statEnds:     reg.Int("game.ends"),
		statBest:     reg.Int("score.best"),
		statScore:    reg.Int("score.current"),
		statLength:   reg.Int("snake.length"),
		statOver:     reg.Bool("game.over"),
		statPhase:    reg.Label("game.phase"),
		statLastKill: reg.Label("game.cause"),
	}
}

func (t *Telemetry) OnTick(outcome Outcome, s *Snapshot) {
	t.statTicks.Add(1)
	t.statScore.Store(int64(s.Score))
	t.statLength.Store(int64(len(s.Snake)))
	t.statOver.Store(s.GameOver)

	if outcome == OutcomeAte || outcome == OutcomeBoardFull {
		t.statFood.Add(1)
	}
	if best := int64(s.Score); best > t.statBest.Load() {
		t.statBest.Store(best)
	}
	if outcome.Fatal() {
		t.statEnds.Add(1)
		t.statLastKill.Set(outcome.String())
		log.Printf("game over: cause=%s score=%d length=%d", outcome, s.Score, len(s.Snake))
	}
}

func (t *Telemetry) OnPhase(from, to Phase) {
	t.statPhase.Set(to.String())
	if to == PhasePlaying {
		t.statGames.Add(1)
		t.statOver.Store(false)
	}
}
