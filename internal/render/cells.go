package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Default terminal cell size in virtual pixels
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Glyphs by particle radius
const (
	glyphSmall  = '·'
	glyphMedium = '•'
	glyphLarge  = '●'
)

// Cells draws the field onto a tcell screen. Surface coordinates are virtual
// pixels; each cell covers CellWidth x CellHeight of them.
type Cells struct {
	screen     tcell.Screen
	cellW      int
	cellH      int
	cols, rows int
	background colorful.Color
	blank      tcell.Style
}

// NewCells returns a surface over screen. Non-positive cell sizes fall back
// to the defaults.
func NewCells(screen tcell.Screen, cellW, cellH int, background color.RGBA) *Cells {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	bg, _ := colorful.MakeColor(background)
	return &Cells{
		screen:     screen,
		cellW:      cellW,
		cellH:      cellH,
		background: bg,
		blank:      tcell.StyleDefault.Background(toTcell(bg)),
	}
}

// VirtualSize converts a terminal size in cells to surface dimensions.
func (c *Cells) VirtualSize(cols, rows int) (int, int) {
	return cols * c.cellW, rows * c.cellH
}

// Resize records the grid covered by a width x height virtual surface.
func (c *Cells) Resize(width, height int) {
	c.cols, c.rows = 0, 0
	if width > 0 && height > 0 {
		c.cols = (width + c.cellW - 1) / c.cellW
		c.rows = (height + c.cellH - 1) / c.cellH
	}
}

// Clear paints every cell blank in the background colour
func (c *Cells) Clear() {
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			c.screen.SetContent(x, y, ' ', nil, c.blank)
		}
	}
}

// FillCircle draws one glyph in the cell under (x, y), its colour blended
// over the background at alpha.
func (c *Cells) FillCircle(x, y, radius float64, col color.RGBA, alpha float64) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := int(x)/c.cellW, int(y)/c.cellH
	if cx >= c.cols || cy >= c.rows {
		return
	}

	fg, _ := colorful.MakeColor(col)
	blended := c.background.BlendRgb(fg, clamp01(alpha)).Clamped()
	style := c.blank.Foreground(toTcell(blended))

	c.screen.SetContent(cx, cy, glyphFor(radius), nil, style)
}

// Grid returns the number of columns and rows in use.
func (c *Cells) Grid() (int, int) {
	return c.cols, c.rows
}

func glyphFor(radius float64) rune {
	switch {
	case radius < 1.2:
		return glyphSmall
	case radius < 1.9:
		return glyphMedium
	default:
		return glyphLarge
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
