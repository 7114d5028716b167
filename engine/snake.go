package engine

import "github.com/lixenwraith/vi-snake/core"

// Snake is an ordered chain of cells, head at index 0
// body is allocated once at board capacity and indexed by length, so growth
// never reallocates and a move is a fixed-cost shift
type Snake struct {
	body      []core.Point
	length    int
	direction core.Direction
}

// NewSnake allocates storage for a snake of up to capacity cells
func NewSnake(capacity int) *Snake {
	if capacity < 1 {
		capacity = 1
	}
	return &Snake{
		body: make([]core.Point, capacity),
	}
}

// Head returns the head cell
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the current segment count
func (s *Snake) Len() int {
	return s.length
}

// Cap returns the storage capacity
func (s *Snake) Cap() int {
	return len(s.body)
}

// Direction returns the current heading
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Cells returns a view of the live body, head first
// INTERNAL USE ONLY - the view aliases snake storage and is invalidated by the next tick
func (s *Snake) Cells() []core.Point {
	return s.body[:s.length]
}

// Set replaces the body with cells (truncated to capacity) and sets the heading
func (s *Snake) Set(cells []core.Point, dir core.Direction) {
	s.length = copy(s.body, cells)
	s.direction = dir
}

// resetLine lays out a straight snake trailing behind head, opposite to dir
func (s *Snake) resetLine(head core.Point, length int, dir core.Direction) {
	if length > len(s.body) {
		length = len(s.body)
	}
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().Delta()
	for i := 0; i < length; i++ {
		s.body[i] = core.Point{X: head.X + back.X*i, Y: head.Y + back.Y*i}
	}
	s.length = length
	s.direction = dir
}

// Turn changes heading unless dir is the exact reverse of the current one
// Returns whether the turn was honored
func (s *Snake) Turn(dir core.Direction) bool {
	if dir == s.direction.Opposite() {
		return false
	}
	s.direction = dir
	return true
}

// Collides reports whether p matches any of the first k cells
func (s *Snake) Collides(p core.Point, k int) bool {
	if k > s.length {
		k = s.length
	}
	for i := 0; i < k; i++ {
		if s.body[i] == p {
			return true
		}
	}
	return false
}

// advance commits a move to next; when growing, length increases first so the
// shift populates the new tail slot from the old tail
func (s *Snake) advance(next core.Point, grow bool) {
	if grow && s.length < len(s.body) {
		s.length++
	}
	for i := s.length - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = next
}
