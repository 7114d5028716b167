package engine

import (
	"context"
	"errors"

	"github.com/lixenwraith/vi-snake/core"
)

// ErrScriptExhausted is returned by ScriptedInput.Wait once its script is consumed
var ErrScriptExhausted = errors.New("scripted input exhausted")

// ScriptedInput replays fixed action lists; for tests of the loop and its callers
type ScriptedInput struct {
	Polls   []Action // Consumed by Poll; ActionNone once empty
	Waits   []Action // Consumed by Wait; ErrScriptExhausted once empty
	PollErr error    // Returned by Poll once Polls is empty, if set
	Flushes int
}

func (s *ScriptedInput) Poll() (Action, error) {
	if len(s.Polls) == 0 {
		return ActionNone, s.PollErr
	}
	a := s.Polls[0]
	s.Polls = s.Polls[1:]
	return a, nil
}

func (s *ScriptedInput) Wait(ctx context.Context) (Action, error) {
	if err := ctx.Err(); err != nil {
		return ActionNone, err
	}
	if len(s.Waits) == 0 {
		return ActionNone, ErrScriptExhausted
	}
	a := s.Waits[0]
	s.Waits = s.Waits[1:]
	return a, nil
}

func (s *ScriptedInput) Flush() {
	s.Flushes++
}

// RecordingRenderer keeps a deep copy of every rendered snapshot
type RecordingRenderer struct {
	Frames []Snapshot
}

func (r *RecordingRenderer) Render(s *Snapshot) {
	frame := *s
	frame.Snake = append([]core.Point(nil), s.Snake...)
	frame.Obstacles = append([]core.Point(nil), s.Obstacles...)
	r.Frames = append(r.Frames, frame)
}

// Last returns the most recent frame
func (r *RecordingRenderer) Last() Snapshot {
	return r.Frames[len(r.Frames)-1]
}
