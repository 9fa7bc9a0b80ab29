package field

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func checkRanges(t *testing.T, p Particle, b Bounds) {
	t.Helper()
	if p.X < 0 || p.X >= b.Width || p.Y < 0 || p.Y >= b.Height {
		t.Errorf("position = (%v, %v), want inside %vx%v", p.X, p.Y, b.Width, b.Height)
	}
	if p.Radius < MinRadius || p.Radius > MaxRadius {
		t.Errorf("radius = %v, want [%v, %v]", p.Radius, MinRadius, MaxRadius)
	}
	if p.VX < -MaxSpeed || p.VX > MaxSpeed || p.VY < -MaxSpeed || p.VY > MaxSpeed {
		t.Errorf("velocity = (%v, %v), want within ±%v", p.VX, p.VY, MaxSpeed)
	}
	if p.Opacity < MinOpacity || p.Opacity > MaxOpacity {
		t.Errorf("opacity = %v, want [%v, %v]", p.Opacity, MinOpacity, MaxOpacity)
	}
}

func TestResetRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bounds := []Bounds{{800, 600}, {1, 1}, {0.5, 3000}, {1920, 1080}}

	for _, b := range bounds {
		var p Particle
		for i := 0; i < 1000; i++ {
			p.Reset(rng, b)
			checkRanges(t, p, b)
		}
	}
}

func TestNewParticleIsReset(t *testing.T) {
	b := Bounds{640, 480}

	// Same seed, same draws: construction and reset must be the same path.
	got := NewParticle(rand.New(rand.NewSource(42)), b)

	var want Particle
	want.Reset(rand.New(rand.NewSource(42)), b)

	if got != want {
		t.Errorf("NewParticle = %+v, want %+v", got, want)
	}
}

func TestUpdateMovesByVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := Bounds{100, 100}
	p := Particle{X: 50, Y: 50, VX: 0.2, VY: -0.1, Radius: 1, Opacity: 0.5}

	p.Update(rng, b)

	if math.Abs(p.X-50.2) > 1e-9 || math.Abs(p.Y-49.9) > 1e-9 {
		t.Errorf("position = (%v, %v), want (50.2, 49.9)", p.X, p.Y)
	}
	if p.Radius != 1 || p.Opacity != 0.5 {
		t.Errorf("in-bounds update changed attributes: %+v", p)
	}
}

func TestUpdateNeverLeavesBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := Bounds{30, 20}
	p := NewParticle(rng, b)

	for i := 0; i < 100000; i++ {
		p.Update(rng, b)
		if !b.Contains(p.X, p.Y) {
			t.Fatalf("step %d: position (%v, %v) outside bounds", i, p.X, p.Y)
		}
	}
}

func TestUpdateResetsAtRightEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := Bounds{800, 600}
	p := Particle{X: b.Width - 0.1, Y: 300, VX: 0.2, VY: 0, Radius: 1, Opacity: 0.3}

	p.Update(rng, b)

	if !b.Contains(p.X, p.Y) {
		t.Fatalf("position = (%v, %v), want inside bounds", p.X, p.Y)
	}
	// Clamping or wrapping would keep radius and opacity.
	if p.Radius == 1 && p.Opacity == 0.3 {
		t.Errorf("particle = %+v, want a full reset", p)
	}
	checkRanges(t, p, b)
}

func TestUpdateResetsOnEveryEdge(t *testing.T) {
	b := Bounds{100, 50}
	tests := []struct {
		name string
		p    Particle
	}{
		{"left", Particle{X: 0.1, Y: 25, VX: -0.2}},
		{"right", Particle{X: 99.9, Y: 25, VX: 0.2}},
		{"top", Particle{X: 50, Y: 0.1, VY: -0.2}},
		{"bottom", Particle{X: 50, Y: 49.9, VY: 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(11))
			p := tt.p
			p.Update(rng, b)
			checkRanges(t, p, b)
		})
	}
}

func TestDrawUsesOwnOpacity(t *testing.T) {
	s := &recordSurface{}
	p := Particle{X: 3, Y: 4, Radius: 2, Opacity: 0.35}
	hue := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	p.Draw(s, hue)

	if len(s.circles) != 1 {
		t.Fatalf("circles = %d, want 1", len(s.circles))
	}
	c := s.circles[0]
	if c.x != 3 || c.y != 4 || c.r != 2 || c.c != hue || c.alpha != 0.35 {
		t.Errorf("circle = %+v", c)
	}
}

func TestBoundsEmpty(t *testing.T) {
	tests := []struct {
		b    Bounds
		want bool
	}{
		{Bounds{0, 0}, true},
		{Bounds{10, 0}, true},
		{Bounds{-1, 10}, true},
		{Bounds{1, 1}, false},
	}
	for _, tt := range tests {
		if got := tt.b.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.b, got, tt.want)
		}
	}
}
