package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-snake/parameter"
)

// Difficulty selects the static obstacle count; fixed for the process lifetime
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns the label shown in the status block
func (d Difficulty) String() string {
	switch d {
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "easy"
	}
}

// ObstacleCount maps difficulty to the number of obstacles placed per game
func (d Difficulty) ObstacleCount() int {
	switch d {
	case DifficultyMedium:
		return parameter.ObstaclesMedium
	case DifficultyHard:
		return parameter.ObstaclesHard
	default:
		return parameter.ObstaclesEasy
	}
}

// ParseDifficulty accepts the status labels, case-insensitive
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyEasy, fmt.Errorf("unknown difficulty %q", s)
}
