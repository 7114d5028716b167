package input

import (
	"context"
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

// ErrClosed is returned once the terminal stops delivering events
var ErrClosed = errors.New("input source closed")

// Source is a tcell-backed engine.InputSource
// One pump goroutine forwards terminal events into a buffered channel; the
// loop reads it without blocking while playing and blocking at the prompt
type Source struct {
	screen tcell.Screen
	table  *KeyTable
	events chan tcell.Event

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSource starts pumping events from an initialized screen
func NewSource(screen tcell.Screen) *Source {
	s := newSource(screen, DefaultKeyTable())
	go s.pump()
	return s
}

func newSource(screen tcell.Screen, table *KeyTable) *Source {
	return &Source{
		screen: screen,
		table:  table,
		events: make(chan tcell.Event, parameter.InputQueueSize),
		stop:   make(chan struct{}),
	}
}

// pump exits when the screen is finalized (PollEvent returns nil) or on Close
func (s *Source) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.stop:
			return
		}
	}
}

// Close stops forwarding; the pump goroutine ends with the screen
func (s *Source) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Poll decodes at most one pending event without blocking
func (s *Source) Poll() (engine.Action, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return engine.ActionNone, ErrClosed
		}
		return s.decode(ev), nil
	default:
		return engine.ActionNone, nil
	}
}

// Wait blocks for one event or until ctx is done
func (s *Source) Wait(ctx context.Context) (engine.Action, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return engine.ActionNone, ErrClosed
		}
		return s.decode(ev), nil
	case <-ctx.Done():
		return engine.ActionNone, ctx.Err()
	}
}

// Flush discards everything already queued
// Resize events are still honored so the next frame fits the terminal
func (s *Source) Flush() {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return
			}
			if _, resize := ev.(*tcell.EventResize); resize {
				s.screen.Sync()
			}
		default:
			return
		}
	}
}

func (s *Source) decode(ev tcell.Event) engine.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.table.Lookup(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return engine.ActionNone
}
