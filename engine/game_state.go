package engine

import (
	"errors"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/vmath"
)

// Outcome classifies the result of a single tick
type Outcome uint8

const (
	OutcomeNone      Outcome = iota // Tick skipped, game already over
	OutcomeMoved                    // Plain move
	OutcomeAte                      // Moved onto food, grew, scored
	OutcomeWall                     // Left a clamped board
	OutcomeObstacle                 // Hit an obstacle
	OutcomeSelf                     // Hit own body
	OutcomeBoardFull                // Grew into the last free cell, no room for food
)

var outcomeNames = [...]string{
	OutcomeNone:      "none",
	OutcomeMoved:     "moved",
	OutcomeAte:       "ate",
	OutcomeWall:      "wall",
	OutcomeObstacle:  "obstacle",
	OutcomeSelf:      "self",
	OutcomeBoardFull: "board_full",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Fatal reports whether the outcome ended the game
func (o Outcome) Fatal() bool {
	return o >= OutcomeWall
}

// StateConfig is the startup-only configuration of a game
// Width is raised to MinBoardWidth if smaller
type StateConfig struct {
	Width      int
	Height     int
	Wrap       bool
	Difficulty Difficulty
}

// DefaultStateConfig returns the standard 30x20 clamped easy board
func DefaultStateConfig() StateConfig {
	return StateConfig{
		Width:      parameter.BoardWidth,
		Height:     parameter.BoardHeight,
		Difficulty: DifficultyEasy,
	}
}

// GameState owns the snake, food, obstacles and score, and the per-tick transition
// Not safe for concurrent use; the loop is its only writer
type GameState struct {
	Board Board
	Snake *Snake

	Food          core.Point
	Obstacles     [parameter.MaxObstacles]core.Point
	ObstacleCount int

	Score    int
	GameOver bool
	Draw     bool // Game ended because no free cell remained for food

	// Set once at construction, never mutated
	Difficulty Difficulty

	placer   *Placer
	occupied *CellSet // Scratch exclusion set, rebuilt per placement
}

// MinBoardWidth fits the initial snake, which extends left from the center column
const MinBoardWidth = 2 * (parameter.SnakeInitialLength - 1)

// NewGameState creates a state with snake storage sized to the board capacity
// Call Setup before the first Advance
func NewGameState(cfg StateConfig, rng *vmath.FastRand) *GameState {
	board := NewBoard(max(cfg.Width, MinBoardWidth), cfg.Height, cfg.Wrap)
	return &GameState{
		Board:      board,
		Snake:      NewSnake(board.Capacity()),
		Difficulty: cfg.Difficulty,
		placer:     NewPlacer(board, rng),
		occupied:   NewCellSet(board),
	}
}

// WrapEnabled reports the boundary policy
func (gs *GameState) WrapEnabled() bool {
	return gs.Board.Wrap
}

// Setup initializes the first game
func (gs *GameState) Setup() {
	gs.reset()
}

// Restart resets to a fresh game with the same wrap and difficulty
// Snake storage is reused
func (gs *GameState) Restart() {
	gs.reset()
}

func (gs *GameState) reset() {
	gs.Snake.resetLine(gs.Board.Center(), parameter.SnakeInitialLength, core.DirRight)

	gs.Score = 0
	gs.GameOver = false
	gs.Draw = false
	gs.Food = core.Point{}
	gs.Obstacles = [parameter.MaxObstacles]core.Point{}
	gs.ObstacleCount = 0

	// Food first, then obstacles excluding snake, food and earlier obstacles
	if err := gs.placeFood(); err != nil {
		gs.endDraw()
		return
	}
	gs.placeObstacles()
}

// placeFood draws a food cell excluding snake and obstacles
func (gs *GameState) placeFood() error {
	gs.occupied.Reset()
	gs.occupied.AddAll(gs.Snake.Cells())
	gs.occupied.AddAll(gs.ObstacleCells())

	food, err := gs.placer.Place(gs.occupied)
	if err != nil {
		return err
	}
	gs.Food = food
	return nil
}

// placeObstacles fills the obstacle set for the configured difficulty
// The exclusion set grows as each obstacle is fixed; stops early if the board runs out
func (gs *GameState) placeObstacles() {
	want := gs.Difficulty.ObstacleCount()
	if want > parameter.MaxObstacles {
		want = parameter.MaxObstacles
	}
	if want == 0 {
		return
	}

	gs.occupied.Reset()
	gs.occupied.AddAll(gs.Snake.Cells())
	gs.occupied.Add(gs.Food)

	for i := 0; i < want; i++ {
		p, err := gs.placer.Place(gs.occupied)
		if errors.Is(err, ErrNoSpace) {
			return
		}
		gs.Obstacles[i] = p
		gs.ObstacleCount++
		gs.occupied.Add(p)
	}
}

func (gs *GameState) endDraw() {
	gs.GameOver = true
	gs.Draw = true
}

// ObstacleCells returns a view of the placed obstacles
func (gs *GameState) ObstacleCells() []core.Point {
	return gs.Obstacles[:gs.ObstacleCount]
}

// HasObstacle reports whether p is an obstacle cell
func (gs *GameState) HasObstacle(p core.Point) bool {
	for _, o := range gs.ObstacleCells() {
		if o == p {
			return true
		}
	}
	return false
}

// Turn requests a heading change; 180 degree reversals are ignored
func (gs *GameState) Turn(dir core.Direction) bool {
	return gs.Snake.Turn(dir)
}

// Advance runs one tick of movement and collision
// Check order: boundary, obstacle, self, then commit. A fatal check sets GameOver
// and returns before any mutation of snake, score or food
func (gs *GameState) Advance() Outcome {
	if gs.GameOver {
		return OutcomeNone
	}

	proposed := gs.Snake.Head().Add(gs.Snake.Direction().Delta())
	next, ok := gs.Board.Resolve(proposed)
	if !ok {
		gs.GameOver = true
		return OutcomeWall
	}

	ateFood := next == gs.Food

	if gs.HasObstacle(next) {
		gs.GameOver = true
		return OutcomeObstacle
	}

	// The tail vacates this tick unless growing, so it is excluded from the check
	k := gs.Snake.Len()
	if !ateFood {
		k--
	}
	if gs.Snake.Collides(next, k) {
		gs.GameOver = true
		return OutcomeSelf
	}

	gs.Snake.advance(next, ateFood)
	if !ateFood {
		return OutcomeMoved
	}

	gs.Score++
	if err := gs.placeFood(); err != nil {
		gs.endDraw()
		return OutcomeBoardFull
	}
	return OutcomeAte
}

// Snapshot is a read-only copy of the state handed to renderers and observers
type Snapshot struct {
	Width, Height int
	Wrap          bool
	Difficulty    Difficulty

	Snake     []core.Point
	Direction core.Direction
	Food      core.Point
	Obstacles []core.Point

	Score    int
	GameOver bool
	Draw     bool
}

// Snapshot returns a fresh copy of the state
func (gs *GameState) Snapshot() Snapshot {
	var s Snapshot
	gs.SnapshotInto(&s)
	return s
}

// SnapshotInto copies the state into dst, reusing its slices
func (gs *GameState) SnapshotInto(dst *Snapshot) {
	dst.Width = gs.Board.Width
	dst.Height = gs.Board.Height
	dst.Wrap = gs.Board.Wrap
	dst.Difficulty = gs.Difficulty

	dst.Snake = append(dst.Snake[:0], gs.Snake.Cells()...)
	dst.Direction = gs.Snake.Direction()
	dst.Food = gs.Food
	dst.Obstacles = append(dst.Obstacles[:0], gs.ObstacleCells()...)

	dst.Score = gs.Score
	dst.GameOver = gs.GameOver
	dst.Draw = gs.Draw
}
