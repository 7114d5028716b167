package engine

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/vmath"
)

// Board is the fixed-size playfield and its boundary policy
// Wrap selects toroidal topology; otherwise leaving the board is lethal
type Board struct {
	Width  int
	Height int
	Wrap   bool
}

// NewBoard creates a board; dimensions below 1 are raised to 1
func NewBoard(width, height int, wrap bool) Board {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Board{Width: width, Height: height, Wrap: wrap}
}

// Capacity is the total cell count, the upper bound on snake length
func (b Board) Capacity() int {
	return b.Width * b.Height
}

// Contains reports whether p lies on the board
func (b Board) Contains(p core.Point) bool {
	return vmath.InRange(p.X, b.Width) && vmath.InRange(p.Y, b.Height)
}

// Index returns the row-major index of an on-board point
func (b Board) Index(p core.Point) int {
	return p.Y*b.Width + p.X
}

// PointAt is the inverse of Index
func (b Board) PointAt(idx int) core.Point {
	return core.Point{X: idx % b.Width, Y: idx / b.Width}
}

// Center returns the spawn anchor used by setup
func (b Board) Center() core.Point {
	return core.Point{X: b.Width / 2, Y: b.Height / 2}
}

// Resolve applies the boundary policy to a proposed cell
// Wrapping boards always succeed with each axis taken modulo its extent;
// clamped boards fail for any off-board coordinate
func (b Board) Resolve(p core.Point) (core.Point, bool) {
	if b.Wrap {
		return core.Point{X: vmath.Wrap(p.X, b.Width), Y: vmath.Wrap(p.Y, b.Height)}, true
	}
	if !b.Contains(p) {
		return p, false
	}
	return p, true
}
