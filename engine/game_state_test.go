package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/vmath"
)

func newTestState(wrap bool, difficulty Difficulty, seed uint64) *GameState {
	cfg := DefaultStateConfig()
	cfg.Wrap = wrap
	cfg.Difficulty = difficulty
	gs := NewGameState(cfg, vmath.NewFastRand(seed))
	gs.Setup()
	return gs
}

// clearBoard removes food and obstacles from the snake's way
func clearBoard(gs *GameState) {
	gs.ObstacleCount = 0
	gs.Food = core.Point{X: 0, Y: 0}
}

func assertUnchanged(t *testing.T, gs *GameState, cells []core.Point, score int) {
	t.Helper()
	if !equalCells(gs.Snake.Cells(), cells) {
		t.Errorf("Expected snake unchanged %v, got %v", cells, gs.Snake.Cells())
	}
	if gs.Score != score {
		t.Errorf("Expected score %d, got %d", score, gs.Score)
	}
}

// TestAdvanceScenarioPlainMove covers the reference move on a 30x20 easy board
func TestAdvanceScenarioPlainMove(t *testing.T) {
	gs := newTestState(false, DifficultyEasy, 1)
	clearBoard(gs)
	gs.Snake.Set(pts(14, 10, 13, 10, 12, 10), core.DirRight)

	outcome := gs.Advance()

	if outcome != OutcomeMoved {
		t.Errorf("Expected OutcomeMoved, got %v", outcome)
	}
	if !equalCells(gs.Snake.Cells(), pts(15, 10, 14, 10, 13, 10)) {
		t.Errorf("Unexpected body %v", gs.Snake.Cells())
	}
	if gs.GameOver {
		t.Error("Expected game to continue")
	}
}

// TestAdvanceScenarioRightWall verifies leaving a clamped board ends the game untouched
func TestAdvanceScenarioRightWall(t *testing.T) {
	gs := newTestState(false, DifficultyEasy, 1)
	clearBoard(gs)
	start := pts(29, 10, 28, 10, 27, 10)
	gs.Snake.Set(start, core.DirRight)

	outcome := gs.Advance()

	if outcome != OutcomeWall {
		t.Errorf("Expected OutcomeWall, got %v", outcome)
	}
	if !gs.GameOver {
		t.Error("Expected game over")
	}
	assertUnchanged(t, gs, start, 0)
}

func TestAdvanceClampedEdges(t *testing.T) {
	tests := []struct {
		name  string
		cells []core.Point
		dir   core.Direction
	}{
		{"left", pts(0, 5, 1, 5, 2, 5), core.DirLeft},
		{"top", pts(5, 0, 5, 1, 5, 2), core.DirUp},
		{"bottom", pts(5, 19, 5, 18, 5, 17), core.DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestState(false, DifficultyEasy, 2)
			clearBoard(gs)
			gs.Food = core.Point{X: 20, Y: 10}
			gs.Snake.Set(tt.cells, tt.dir)

			if outcome := gs.Advance(); outcome != OutcomeWall {
				t.Errorf("Expected OutcomeWall, got %v", outcome)
			}
			assertUnchanged(t, gs, tt.cells, 0)
		})
	}
}

// TestAdvanceWrap verifies the head reappears on the opposite edge, other axis unaffected
func TestAdvanceWrap(t *testing.T) {
	tests := []struct {
		name     string
		cells    []core.Point
		dir      core.Direction
		wantHead core.Point
	}{
		{"right edge", pts(29, 10, 28, 10, 27, 10), core.DirRight, core.Point{X: 0, Y: 10}},
		{"left edge", pts(0, 4, 1, 4, 2, 4), core.DirLeft, core.Point{X: 29, Y: 4}},
		{"top edge", pts(6, 0, 6, 1, 6, 2), core.DirUp, core.Point{X: 6, Y: 19}},
		{"bottom edge", pts(6, 19, 6, 18, 6, 17), core.DirDown, core.Point{X: 6, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestState(true, DifficultyEasy, 3)
			clearBoard(gs)
			gs.Food = core.Point{X: 15, Y: 15}
			gs.Snake.Set(tt.cells, tt.dir)

			if outcome := gs.Advance(); outcome != OutcomeMoved {
				t.Fatalf("Expected OutcomeMoved, got %v", outcome)
			}
			if gs.Snake.Head() != tt.wantHead {
				t.Errorf("Expected head %+v, got %+v", tt.wantHead, gs.Snake.Head())
			}
			if gs.Snake.Cells()[1] != tt.cells[0] {
				t.Errorf("Expected old head to become neck, got %+v", gs.Snake.Cells()[1])
			}
		})
	}
}

// TestAdvanceEatFood verifies score and length grow by one and food moves off the snake
func TestAdvanceEatFood(t *testing.T) {
	gs := newTestState(false, DifficultyHard, 4)
	gs.ObstacleCount = 0
	gs.Snake.Set(pts(14, 10, 13, 10, 12, 10), core.DirRight)
	gs.Food = core.Point{X: 15, Y: 10}

	outcome := gs.Advance()

	if outcome != OutcomeAte {
		t.Fatalf("Expected OutcomeAte, got %v", outcome)
	}
	if gs.Score != 1 {
		t.Errorf("Expected score 1, got %d", gs.Score)
	}
	if !equalCells(gs.Snake.Cells(), pts(15, 10, 14, 10, 13, 10, 12, 10)) {
		t.Errorf("Unexpected body after growth %v", gs.Snake.Cells())
	}
	if gs.Snake.Collides(gs.Food, gs.Snake.Len()) {
		t.Errorf("New food %+v overlaps the snake", gs.Food)
	}
	if gs.HasObstacle(gs.Food) {
		t.Errorf("New food %+v overlaps an obstacle", gs.Food)
	}
	if !gs.Board.Contains(gs.Food) {
		t.Errorf("New food %+v is off board", gs.Food)
	}
}

func TestAdvanceFoodAvoidsObstacles(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		gs := newTestState(false, DifficultyHard, seed)
		gs.Snake.Set(pts(14, 10, 13, 10, 12, 10), core.DirRight)
		gs.Food = core.Point{X: 15, Y: 10}
		if gs.HasObstacle(gs.Food) {
			continue
		}
		gs.Advance()
		if gs.HasObstacle(gs.Food) || gs.Snake.Collides(gs.Food, gs.Snake.Len()) {
			t.Fatalf("Seed %d: food %+v placed on an occupied cell", seed, gs.Food)
		}
	}
}

// TestAdvanceSelfCollision verifies body hits are fatal but the vacating tail is not
func TestAdvanceSelfCollision(t *testing.T) {
	t.Run("body", func(t *testing.T) {
		gs := newTestState(false, DifficultyEasy, 5)
		clearBoard(gs)
		cells := pts(5, 5, 6, 5, 6, 6, 5, 6, 4, 6)
		gs.Snake.Set(cells, core.DirDown)

		if outcome := gs.Advance(); outcome != OutcomeSelf {
			t.Errorf("Expected OutcomeSelf, got %v", outcome)
		}
		if !gs.GameOver {
			t.Error("Expected game over")
		}
		assertUnchanged(t, gs, cells, 0)
	})

	t.Run("vacating tail", func(t *testing.T) {
		gs := newTestState(false, DifficultyEasy, 5)
		clearBoard(gs)
		gs.Snake.Set(pts(5, 5, 6, 5, 6, 6, 5, 6), core.DirDown)

		if outcome := gs.Advance(); outcome != OutcomeMoved {
			t.Errorf("Expected OutcomeMoved, got %v", outcome)
		}
		if gs.GameOver {
			t.Error("Chasing the tail must not end the game")
		}
		if !equalCells(gs.Snake.Cells(), pts(5, 6, 5, 5, 6, 5, 6, 6)) {
			t.Errorf("Unexpected body %v", gs.Snake.Cells())
		}
	})

	t.Run("tail while growing", func(t *testing.T) {
		gs := newTestState(false, DifficultyEasy, 5)
		clearBoard(gs)
		cells := pts(5, 5, 6, 5, 6, 6, 5, 6)
		gs.Snake.Set(cells, core.DirDown)
		gs.Food = core.Point{X: 5, Y: 6}

		if outcome := gs.Advance(); outcome != OutcomeSelf {
			t.Errorf("Expected OutcomeSelf when growing into the tail, got %v", outcome)
		}
		assertUnchanged(t, gs, cells, 0)
	})
}

// TestAdvanceObstacle verifies obstacles are fatal before growth is committed
func TestAdvanceObstacle(t *testing.T) {
	gs := newTestState(false, DifficultyEasy, 6)
	clearBoard(gs)
	cells := pts(14, 10, 13, 10, 12, 10)
	gs.Snake.Set(cells, core.DirRight)
	gs.Obstacles[0] = core.Point{X: 15, Y: 10}
	gs.ObstacleCount = 1

	if outcome := gs.Advance(); outcome != OutcomeObstacle {
		t.Errorf("Expected OutcomeObstacle, got %v", outcome)
	}
	assertUnchanged(t, gs, cells, 0)

	// Food forced onto the obstacle still loses to the obstacle check
	gs = newTestState(false, DifficultyEasy, 6)
	gs.Snake.Set(cells, core.DirRight)
	gs.Obstacles[0] = core.Point{X: 15, Y: 10}
	gs.ObstacleCount = 1
	gs.Food = core.Point{X: 15, Y: 10}

	if outcome := gs.Advance(); outcome != OutcomeObstacle {
		t.Errorf("Expected OutcomeObstacle over food, got %v", outcome)
	}
	assertUnchanged(t, gs, cells, 0)
}

func TestAdvanceAfterGameOverIsNoop(t *testing.T) {
	gs := newTestState(false, DifficultyEasy, 7)
	clearBoard(gs)
	cells := pts(29, 1, 28, 1, 27, 1)
	gs.Snake.Set(cells, core.DirRight)
	gs.Advance()

	if outcome := gs.Advance(); outcome != OutcomeNone {
		t.Errorf("Expected OutcomeNone, got %v", outcome)
	}
	assertUnchanged(t, gs, cells, 0)
}

// TestAdvanceBoardFull verifies growing into the last free cell ends the game as a draw
func TestAdvanceBoardFull(t *testing.T) {
	cfg := StateConfig{Width: 4, Height: 1}
	gs := NewGameState(cfg, vmath.NewFastRand(8))
	gs.Setup()

	if gs.Food != (core.Point{X: 3, Y: 0}) {
		t.Fatalf("Expected the only free cell to hold food, got %+v", gs.Food)
	}

	outcome := gs.Advance()

	if outcome != OutcomeBoardFull {
		t.Fatalf("Expected OutcomeBoardFull, got %v", outcome)
	}
	if !gs.GameOver || !gs.Draw {
		t.Error("Expected a game over draw")
	}
	if gs.Score != 1 || gs.Snake.Len() != 4 {
		t.Errorf("Expected the final growth to be kept, score=%d length=%d", gs.Score, gs.Snake.Len())
	}
}

// TestSetupDifficultyObstacles verifies the obstacle table and placement invariants
func TestSetupDifficultyObstacles(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       int
	}{
		{DifficultyEasy, 0},
		{DifficultyMedium, 6},
		{DifficultyHard, 12},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			for seed := uint64(1); seed <= 25; seed++ {
				gs := newTestState(false, tt.difficulty, seed)

				if gs.ObstacleCount != tt.want {
					t.Fatalf("Expected %d obstacles, got %d", tt.want, gs.ObstacleCount)
				}

				seen := make(map[core.Point]bool)
				for _, o := range gs.ObstacleCells() {
					if seen[o] {
						t.Fatalf("Seed %d: duplicate obstacle %+v", seed, o)
					}
					seen[o] = true
					if o == gs.Food {
						t.Fatalf("Seed %d: obstacle on food %+v", seed, o)
					}
					if gs.Snake.Collides(o, gs.Snake.Len()) {
						t.Fatalf("Seed %d: obstacle on snake %+v", seed, o)
					}
				}
				if gs.Snake.Collides(gs.Food, gs.Snake.Len()) {
					t.Fatalf("Seed %d: food on snake %+v", seed, gs.Food)
				}
			}
		})
	}
}

func TestSetupInitialSnake(t *testing.T) {
	gs := newTestState(false, DifficultyMedium, 11)

	if !equalCells(gs.Snake.Cells(), pts(15, 10, 14, 10, 13, 10)) {
		t.Errorf("Unexpected initial body %v", gs.Snake.Cells())
	}
	if gs.Snake.Direction() != core.DirRight {
		t.Errorf("Expected initial heading right, got %v", gs.Snake.Direction())
	}
	if gs.Snake.Cap() != parameter.BoardWidth*parameter.BoardHeight {
		t.Errorf("Expected storage for the whole board, got %d", gs.Snake.Cap())
	}
	if gs.Score != 0 || gs.GameOver || gs.Draw {
		t.Error("Expected a clean initial state")
	}
}

// TestRestartMatchesFreshSetup verifies restart resets everything but wrap and difficulty
func TestRestartMatchesFreshSetup(t *testing.T) {
	gs := newTestState(true, DifficultyHard, 12)
	storage := gs.Snake
	capBefore := gs.Snake.Cap()

	gs.Snake.Set(pts(5, 5, 6, 5, 6, 6, 5, 6, 4, 6), core.DirDown)
	gs.Score = 9
	gs.Turn(core.DirDown)
	gs.Advance()
	if !gs.GameOver {
		t.Fatal("Expected the crafted move to end the game")
	}

	gs.Restart()
	fresh := newTestState(true, DifficultyHard, 99)

	if gs.Snake != storage || gs.Snake.Cap() != capBefore {
		t.Error("Expected snake storage to be reused across restart")
	}
	if !equalCells(gs.Snake.Cells(), fresh.Snake.Cells()) {
		t.Errorf("Expected body %v, got %v", fresh.Snake.Cells(), gs.Snake.Cells())
	}
	if gs.Snake.Direction() != fresh.Snake.Direction() {
		t.Errorf("Expected heading %v, got %v", fresh.Snake.Direction(), gs.Snake.Direction())
	}
	if gs.Score != 0 || gs.GameOver || gs.Draw {
		t.Errorf("Expected reset flags, score=%d over=%v draw=%v", gs.Score, gs.GameOver, gs.Draw)
	}
	if gs.ObstacleCount != fresh.ObstacleCount {
		t.Errorf("Expected %d obstacles, got %d", fresh.ObstacleCount, gs.ObstacleCount)
	}
	if !gs.WrapEnabled() || gs.Difficulty != DifficultyHard {
		t.Error("Expected wrap and difficulty to persist")
	}
	for i := gs.ObstacleCount; i < parameter.MaxObstacles; i++ {
		if gs.Obstacles[i] != (core.Point{}) {
			t.Fatalf("Expected unused obstacle slot %d to be cleared", i)
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	gs := newTestState(false, DifficultyMedium, 13)
	snap := gs.Snapshot()

	snap.Snake[0] = core.Point{X: -5, Y: -5}
	if len(snap.Obstacles) > 0 {
		snap.Obstacles[0] = core.Point{X: -5, Y: -5}
	}

	if gs.Snake.Head() == (core.Point{X: -5, Y: -5}) {
		t.Error("Mutating the snapshot changed the snake")
	}
	if gs.ObstacleCount > 0 && gs.Obstacles[0] == (core.Point{X: -5, Y: -5}) {
		t.Error("Mutating the snapshot changed the obstacles")
	}
	if snap.Difficulty != DifficultyMedium || snap.Width != 30 || snap.Height != 20 {
		t.Errorf("Unexpected snapshot header %+v", snap)
	}
}

func TestOutcomeFatal(t *testing.T) {
	fatal := map[Outcome]bool{
		OutcomeNone:      false,
		OutcomeMoved:     false,
		OutcomeAte:       false,
		OutcomeWall:      true,
		OutcomeObstacle:  true,
		OutcomeSelf:      true,
		OutcomeBoardFull: true,
	}
	for o, want := range fatal {
		if o.Fatal() != want {
			t.Errorf("%v.Fatal() = %v, want %v", o, o.Fatal(), want)
		}
	}
}

func TestDifficultyParse(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		got, err := ParseDifficulty(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("Expected error for unknown difficulty")
	}
}

// TestNarrowBoardFitsInitialSnake verifies a board narrower than the starting snake is widened
func TestNarrowBoardFitsInitialSnake(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		wantWidth int
	}{
		{"3x3", 3, MinBoardWidth},
		{"1x3", 1, MinBoardWidth},
		{"exact", MinBoardWidth, MinBoardWidth},
		{"wide", 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(StateConfig{Width: tt.width, Height: 3}, vmath.NewFastRand(1))
			gs.Setup()

			if gs.Board.Width != tt.wantWidth {
				t.Errorf("Expected width %d, got %d", tt.wantWidth, gs.Board.Width)
			}
			if gs.Snake.Len() != parameter.SnakeInitialLength {
				t.Errorf("Expected length %d, got %d", parameter.SnakeInitialLength, gs.Snake.Len())
			}
			for _, c := range gs.Snake.Cells() {
				if !gs.Board.Contains(c) {
					t.Errorf("Expected initial cell %v on %dx%d board", c, gs.Board.Width, gs.Board.Height)
				}
			}
		})
	}
}
