package parameter

// Board glyphs
const (
	GlyphBorder   = '#'
	GlyphHead     = 'O'
	GlyphBody     = 'o'
	GlyphFood     = '*'
	GlyphObstacle = 'X'
)

// Status block layout
const (
	// StatusGapRows is the blank row count between the board's bottom border and the status block
	StatusGapRows = 1
)
