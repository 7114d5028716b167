package engine

import "github.com/lixenwraith/vi-snake/core"

// CellSet is a dense occupancy bitmap over a board
// index = y*Width + x; reused across placements without allocation
type CellSet struct {
	board Board
	cells []bool
	count int
}

// NewCellSet creates an empty set sized to the board
func NewCellSet(b Board) *CellSet {
	return &CellSet{
		board: b,
		cells: make([]bool, b.Capacity()),
	}
}

// Add marks p occupied; off-board points are ignored
// Returns true if p was newly added
func (s *CellSet) Add(p core.Point) bool {
	if !s.board.Contains(p) {
		return false
	}
	idx := s.board.Index(p)
	if s.cells[idx] {
		return false
	}
	s.cells[idx] = true
	s.count++
	return true
}

// AddAll marks every point in ps
func (s *CellSet) AddAll(ps []core.Point) {
	for _, p := range ps {
		s.Add(p)
	}
}

// Has reports whether p is occupied
func (s *CellSet) Has(p core.Point) bool {
	if !s.board.Contains(p) {
		return false
	}
	return s.cells[s.board.Index(p)]
}

// Len returns the number of occupied cells
func (s *CellSet) Len() int {
	return s.count
}

// Full reports whether no free cell remains
func (s *CellSet) Full() bool {
	return s.count >= len(s.cells)
}

// Reset clears all cells
func (s *CellSet) Reset() {
	clear(s.cells)
	s.count = 0
}
