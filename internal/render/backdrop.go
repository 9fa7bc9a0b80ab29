package render

import (
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"
)

// Backdrop noise parameters
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.015 // per virtual pixel
	maxTint     = 0.35
)

// NewNoise returns the perlin generator used for backdrops.
func NewNoise(seed int64) *perlin.Perlin {
	return perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
}

// Backdrop renders a coarse noise texture covering width x height. Each
// output pixel stands for a cell x cell block and is base blended toward tint
// by the noise value. Returns nil for an empty area.
func Backdrop(noise *perlin.Perlin, width, height, cell int, base, tint color.RGBA) *image.RGBA {
	if width <= 0 || height <= 0 {
		return nil
	}
	if cell <= 0 {
		cell = 1
	}

	w := (width + cell - 1) / cell
	h := (height + cell - 1) / cell
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	from, _ := colorful.MakeColor(base)
	to, _ := colorful.MakeColor(tint)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := noise.Noise2D(float64(x*cell)*noiseScale, float64(y*cell)*noiseScale)
			t := clamp01((n+1)/2) * maxTint
			r, g, b := from.BlendLab(to, t).Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
