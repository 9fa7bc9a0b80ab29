// Package field simulates an ambient field of drifting particles.
//
// A Field owns its particles and the Surface they are drawn onto. The host
// feeds it viewport sizes through Resize and drives frames either by calling
// Tick from its own frame callback or by handing a Scheduler to Run.
package field

import (
	"context"
	"image/color"
	"io"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Density constants
const (
	PixelsPerParticle = 10
	MaxParticles      = 100
)

// DefaultHue is rgb(122, 158, 170)
var DefaultHue = color.RGBA{R: 122, G: 158, B: 170, A: 255}

// Surface is the 2D raster target particles are drawn onto.
type Surface interface {
	// Resize matches the surface to new viewport dimensions.
	Resize(width, height int)
	// Clear blanks the whole surface.
	Clear()
	// FillCircle paints a filled circle of colour c at alpha in [0, 1].
	FillCircle(x, y, radius float64, c color.RGBA, alpha float64)
}

// State of the simulation lifecycle
type State int

const (
	Uninitialized State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// Field holds the particle collection and the surface it renders to
type Field struct {
	mu        sync.Mutex
	surface   Surface
	width     int
	height    int
	particles []Particle
	hue       color.RGBA
	rng       *rand.Rand
	logger    *log.Logger
	state     State
}

// Option configures a Field at construction.
type Option func(*Field)

// WithHue sets the particle colour.
func WithHue(c color.RGBA) Option {
	return func(f *Field) { f.hue = c }
}

// WithRand sets the random source used for every reset.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) { f.rng = rng }
}

// WithLogger sets the logger used for resize diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(f *Field) { f.logger = l }
}

// New creates an uninitialized field drawing onto s. Call Resize before the
// first Tick.
func New(s Surface, opts ...Option) *Field {
	f := &Field{
		surface: s,
		hue:     DefaultHue,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ParticleCount returns floor(min(width/10, 100)); non-positive widths give 0.
func ParticleCount(width int) int {
	if width <= 0 {
		return 0
	}
	return int(math.Floor(math.Min(float64(width)/PixelsPerParticle, MaxParticles)))
}

// Resize stores the new viewport dimensions, resizes the surface and
// rebuilds the particle collection from scratch.
func (f *Field) Resize(width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.width = width
	f.height = height
	f.surface.Resize(width, height)
	f.rebuild()
	f.state = Running

	f.logger.Printf("resize %dx%d: %d particles", width, height, len(f.particles))
}

// Rebuild discards every particle and spawns ParticleCount(width) fresh ones.
func (f *Field) Rebuild() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rebuild()
}

func (f *Field) rebuild() {
	b := f.bounds()
	if b.Empty() {
		f.particles = nil
		return
	}

	n := ParticleCount(f.width)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = NewParticle(f.rng, b)
	}
}

// Tick clears the surface, then updates and draws each particle in order.
func (f *Field) Tick() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.surface.Clear()

	b := f.bounds()
	for i := range f.particles {
		p := &f.particles[i]
		p.Update(f.rng, b)
		p.Draw(f.surface, f.hue)
	}
}

// Run ticks once per frame until ctx is done or the scheduler fails. It
// returns ctx.Err() on cancellation.
func (f *Field) Run(ctx context.Context, frames Scheduler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		f.Tick()

		if err := frames.NextFrame(ctx); err != nil {
			return err
		}
	}
}

// Len returns the current particle count.
func (f *Field) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.particles)
}

// Bounds returns the current surface bounds.
func (f *Field) Bounds() Bounds {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bounds()
}

// Particles returns a copy of the collection in draw order.
func (f *Field) Particles() []Particle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// State reports whether the field has been sized yet.
func (f *Field) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Field) bounds() Bounds {
	return Bounds{Width: float64(f.width), Height: float64(f.height)}
}
