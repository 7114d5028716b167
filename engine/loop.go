package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// ErrLoopDone is returned when Run is called on a loop that already ran
var ErrLoopDone = errors.New("loop already ran")

// Action is a semantic input decoded from a key
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionQuit
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionQuit:
		return "quit"
	case ActionRestart:
		return "restart"
	default:
		return "none"
	}
}

// Direction maps turn actions to a heading
func (a Action) Direction() (core.Direction, bool) {
	switch a {
	case ActionUp:
		return core.DirUp, true
	case ActionDown:
		return core.DirDown, true
	case ActionLeft:
		return core.DirLeft, true
	case ActionRight:
		return core.DirRight, true
	}
	return 0, false
}

// Renderer draws a snapshot; it has no feedback into the simulation
type Renderer interface {
	Render(s *Snapshot)
}

// InputSource yields at most one action per call
type InputSource interface {
	// Poll returns immediately; ActionNone when nothing is pending
	Poll() (Action, error)
	// Wait blocks until an action arrives or ctx is done
	Wait(ctx context.Context) (Action, error)
	// Flush discards pending input
	Flush()
}

// Observer receives tick outcomes and lifecycle transitions
// Called synchronously on the loop; implementations must not block
type Observer interface {
	OnTick(outcome Outcome, s *Snapshot)
	OnPhase(from, to Phase)
}

// Loop drives the Playing -> GameOver -> Restarted-or-Quit cycle at a fixed cadence
type Loop struct {
	state     *GameState
	renderer  Renderer
	input     InputSource
	sleeper   Sleeper
	observers []Observer

	interval time.Duration
	phase    Phase
	snap     Snapshot
}

// NewLoop wires a game state to its collaborators
func NewLoop(state *GameState, renderer Renderer, input InputSource, sleeper Sleeper, observers ...Observer) *Loop {
	return &Loop{
		state:     state,
		renderer:  renderer,
		input:     input,
		sleeper:   sleeper,
		observers: observers,
		interval:  parameter.TickInterval,
		phase:     PhaseSetup,
	}
}

// Phase returns the current lifecycle phase
func (l *Loop) Phase() Phase {
	return l.phase
}

// Run executes setup once and then plays until quit
// Returns nil on quit, ctx.Err() on cancellation, or the input source's error
func (l *Loop) Run(ctx context.Context) error {
	if l.phase != PhaseSetup {
		return ErrLoopDone
	}

	l.state.Setup()
	if err := l.transition(PhasePlaying); err != nil {
		return err
	}

	for {
		quit, err := l.play(ctx)
		if err != nil {
			return err
		}
		if quit {
			return l.transition(PhaseQuit)
		}

		if err := l.transition(PhaseGameOver); err != nil {
			return err
		}
		restart, err := l.prompt(ctx)
		if err != nil {
			return err
		}
		if !restart {
			return l.transition(PhaseQuit)
		}

		l.state.Restart()
		l.input.Flush()
		if err := l.transition(PhasePlaying); err != nil {
			return err
		}
	}
}

// play runs ticks until the game ends or quit is read
// Each tick is strictly sequential: input, advance, render, sleep
func (l *Loop) play(ctx context.Context) (quit bool, err error) {
	for !l.state.GameOver {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		action, err := l.input.Poll()
		if err != nil {
			return false, fmt.Errorf("poll input: %w", err)
		}
		if action == ActionQuit {
			return true, nil
		}
		if dir, ok := action.Direction(); ok {
			l.state.Turn(dir)
		}

		outcome := l.state.Advance()
		l.render()
		for _, o := range l.observers {
			o.OnTick(outcome, &l.snap)
		}

		if err := l.sleeper.Sleep(ctx, l.interval); err != nil {
			return false, err
		}
	}
	return false, nil
}

// prompt renders the final state once and blocks for quit or restart
// Other actions are discarded and re-polled
func (l *Loop) prompt(ctx context.Context) (restart bool, err error) {
	l.input.Flush()
	l.render()

	for {
		action, err := l.input.Wait(ctx)
		if err != nil {
			return false, fmt.Errorf("wait input: %w", err)
		}
		switch action {
		case ActionQuit:
			return false, nil
		case ActionRestart:
			return true, nil
		}
	}
}

func (l *Loop) render() {
	l.state.SnapshotInto(&l.snap)
	l.renderer.Render(&l.snap)
}

func (l *Loop) transition(to Phase) error {
	from := l.phase
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid phase transition %s -> %s", from, to)
	}
	l.phase = to
	log.Printf("phase %s -> %s (score=%d length=%d)", from, to, l.state.Score, l.state.Snake.Len())

	for _, o := range l.observers {
		o.OnPhase(from, to)
	}
	return nil
}
