package constants

// Border glyphs, double-line box drawing
const (
	BorderTopLeft     = '╔'
	BorderTopRight    = '╗'
	BorderBottomLeft  = '╚'
	BorderBottomRight = '╝'
	BorderHorizontal  = '═'
	BorderVertical    = '║'
)

// Cell glyphs
const (
	// PlayerGlyph is the single movable cell.
	PlayerGlyph = '●'

	// BackgroundGlyph fills the interior and erases vacated player cells.
	BackgroundGlyph = ' '
)
