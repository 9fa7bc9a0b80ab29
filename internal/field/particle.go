package field

import (
	"image/color"
	"math/rand"
)

// Particle attribute ranges
const (
	MinRadius  = 0.5
	MaxRadius  = 2.5
	MaxSpeed   = 0.25 // per axis, per tick
	MinOpacity = 0.1
	MaxOpacity = 0.6
)

// Bounds is the drawable rectangle [0, Width) x [0, Height)
type Bounds struct {
	Width, Height float64
}

// Empty reports whether the bounds have no drawable area
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Contains reports whether (x, y) lies inside the half-open rectangle
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Particle is a single drifting point
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity per tick
	Radius  float64
	Opacity float64
}

// NewParticle returns a particle randomized against b.
func NewParticle(rng *rand.Rand, b Bounds) Particle {
	var p Particle
	p.Reset(rng, b)
	return p
}

// Reset re-randomizes every attribute. It is also the constructor.
func (p *Particle) Reset(rng *rand.Rand, b Bounds) {
	p.X = rng.Float64() * b.Width
	p.Y = rng.Float64() * b.Height
	p.Radius = rng.Float64()*(MaxRadius-MinRadius) + MinRadius
	p.VX = (rng.Float64() - 0.5) * 2 * MaxSpeed
	p.VY = (rng.Float64() - 0.5) * 2 * MaxSpeed
	p.Opacity = rng.Float64()*(MaxOpacity-MinOpacity) + MinOpacity
}

// Update advances the particle one tick and recycles it once it leaves b.
func (p *Particle) Update(rng *rand.Rand, b Bounds) {
	p.X += p.VX
	p.Y += p.VY

	if !b.Contains(p.X, p.Y) {
		p.Reset(rng, b)
	}
}

// Draw paints the particle as a filled circle in hue at its own opacity.
func (p *Particle) Draw(s Surface, hue color.RGBA) {
	s.FillCircle(p.X, p.Y, p.Radius, hue, p.Opacity)
}
