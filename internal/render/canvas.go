// Package render provides field surfaces for an ebiten window and a tcell
// terminal, and the noise backdrop drawn behind them.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is an offscreen ebiten image the field draws into. The window
// composites it onto the screen every frame.
type Canvas struct {
	img           *ebiten.Image
	width, height int
	antialias     bool
}

// NewCanvas returns an empty canvas; Resize allocates the backing image.
func NewCanvas(antialias bool) *Canvas {
	return &Canvas{antialias: antialias}
}

// Resize reallocates the backing image. A zero-sized canvas has no image
// and ignores all drawing.
func (c *Canvas) Resize(width, height int) {
	if c.img != nil && width == c.width && height == c.height {
		c.img.Clear()
		return
	}
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}

	c.width, c.height = width, height
	if width <= 0 || height <= 0 {
		return
	}
	c.img = ebiten.NewImage(width, height)
}

// Clear blanks the canvas to transparent
func (c *Canvas) Clear() {
	if c.img == nil {
		return
	}
	c.img.Clear()
}

// FillCircle draws a filled circle of colour col at the given alpha
func (c *Canvas) FillCircle(x, y, radius float64, col color.RGBA, alpha float64) {
	if c.img == nil {
		return
	}
	clr := color.NRGBA{R: col.R, G: col.G, B: col.B, A: alpha8(alpha)}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(radius), clr, c.antialias)
}

// Image returns the backing image, or nil for a zero-sized canvas.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// Size returns the canvas dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// alpha8 maps [0, 1] onto [0, 255], clamping out-of-range input.
func alpha8(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 255
	}
	return uint8(a*255 + 0.5)
}
