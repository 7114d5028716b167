package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

const (
	controlsLine = "controls: WASD/hjkl/arrows to move, q to quit"
	gameOverLine = "game over, press r to restart, q to quit"
	drawLine     = "board full, press r to restart, q to quit"
)

// Renderer draws snapshots onto a tcell screen
// The board occupies (width+2) x (height+2) cells from the origin including the
// border; the status block follows after a blank gap
type Renderer struct {
	screen tcell.Screen

	borderStyle   tcell.Style
	headStyle     tcell.Style
	foodStyle     tcell.Style
	obstacleStyle tcell.Style
	statusStyle   tcell.Style
	alertStyle    tcell.Style
	drawStyle     tcell.Style
}

// NewRenderer creates a renderer for an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:        screen,
		borderStyle:   tcell.StyleDefault.Foreground(RgbBorder),
		headStyle:     tcell.StyleDefault.Foreground(RgbHead).Bold(true),
		foodStyle:     tcell.StyleDefault.Foreground(RgbFood).Bold(true),
		obstacleStyle: tcell.StyleDefault.Foreground(RgbObstacle),
		statusStyle:   tcell.StyleDefault.Foreground(RgbStatus),
		alertStyle:    tcell.StyleDefault.Foreground(RgbAlert).Bold(true),
		drawStyle:     tcell.StyleDefault.Foreground(RgbDrawAlert).Bold(true),
	}
}

// Render draws one full frame and flushes it
func (r *Renderer) Render(s *engine.Snapshot) {
	r.screen.Clear()

	r.drawBorder(s.Width, s.Height)

	for _, p := range s.Obstacles {
		r.setCell(p.X, p.Y, parameter.GlyphObstacle, r.obstacleStyle)
	}

	// Food is stale once the board has filled
	if !s.Draw {
		r.setCell(s.Food.X, s.Food.Y, parameter.GlyphFood, r.foodStyle)
	}

	// Tail first so the head wins if cells ever coincide
	n := len(s.Snake)
	for i := n - 1; i > 0; i-- {
		p := s.Snake[i]
		r.setCell(p.X, p.Y, parameter.GlyphBody, tcell.StyleDefault.Foreground(GetBodyColor(i, n)))
	}
	if n > 0 {
		r.setCell(s.Snake[0].X, s.Snake[0].Y, parameter.GlyphHead, r.headStyle)
	}

	y := s.Height + 2 + parameter.StatusGapRows
	lines := StatusLines(s)
	for i, line := range lines {
		style := r.statusStyle
		if s.GameOver && i == len(lines)-1 {
			style = r.alertStyle
			if s.Draw {
				style = r.drawStyle
			}
		}
		r.drawText(0, y+i, line, style)
	}

	r.screen.Show()
}

// StatusLines returns the status block, one item per line
func StatusLines(s *engine.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("score: %d", s.Score),
		controlsLine,
		"wrap: " + onOff(s.Wrap),
		"mode: " + s.Difficulty.String(),
	}
	if s.GameOver {
		if s.Draw {
			lines = append(lines, drawLine)
		} else {
			lines = append(lines, gameOverLine)
		}
	}
	return lines
}

func (r *Renderer) drawBorder(w, h int) {
	for x := 0; x < w+2; x++ {
		r.screen.SetContent(x, 0, parameter.GlyphBorder, nil, r.borderStyle)
		r.screen.SetContent(x, h+1, parameter.GlyphBorder, nil, r.borderStyle)
	}
	for y := 1; y <= h; y++ {
		r.screen.SetContent(0, y, parameter.GlyphBorder, nil, r.borderStyle)
		r.screen.SetContent(w+1, y, parameter.GlyphBorder, nil, r.borderStyle)
	}
}

// setCell draws at board coordinates, offset by the border
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x+1, y+1, ch, nil, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
