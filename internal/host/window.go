// Package host runs a field inside an ebiten window or a tcell terminal.
package host

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/olivierh59500/driftfield/internal/config"
	"github.com/olivierh59500/driftfield/internal/field"
	"github.com/olivierh59500/driftfield/internal/render"
)

// Window is an ebiten.Game driving one field. ebiten's Update is the frame
// callback: each call ticks the field into its offscreen canvas and Draw
// composites the canvas over the backdrop.
type Window struct {
	ctx    context.Context
	cfg    config.Config
	field  *field.Field
	canvas *render.Canvas
	logger *log.Logger

	width, height int

	background color.RGBA
	noise      *perlin.Perlin
	backdrop   *ebiten.Image

	fade  *gween.Tween
	alpha float32

	debug   bool
	focused func() bool
}

// NewWindow wires f and its canvas into a window host. f must draw onto
// canvas.
func NewWindow(ctx context.Context, cfg config.Config, f *field.Field, canvas *render.Canvas, logger *log.Logger) *Window {
	w := &Window{
		ctx:        ctx,
		cfg:        cfg,
		field:      f,
		canvas:     canvas,
		logger:     logger,
		background: cfg.BackgroundRGBA(),
		alpha:      1,
		debug:      cfg.Debug,
		focused:    ebiten.IsFocused,
	}

	if cfg.Backdrop {
		w.noise = render.NewNoise(cfg.Seed)
	}
	if d := cfg.Fade; d > 0 {
		w.fade = gween.New(0, 1, float32(d), ease.OutCubic)
		w.alpha = 0
	}
	return w
}

// Run opens the window and blocks until it is closed or ctx is done.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.cfg.TPS)
	ebiten.SetRunnableOnUnfocused(!w.cfg.PauseHidden)

	w.logger.Printf("window %dx%d at %d tps", w.cfg.Width, w.cfg.Height, w.cfg.TPS)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Update is called each tick by Ebitengine
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		w.debug = !w.debug
	}

	w.advanceFade(1 / float32(ebiten.TPS()))
	w.field.Tick()
	return nil
}

// advanceFade moves the entrance fade forward by dt seconds. The fade only
// runs while the window has focus; the field keeps ticking regardless.
func (w *Window) advanceFade(dt float32) {
	if w.fade == nil || !w.focused() {
		return
	}
	a, done := w.fade.Update(dt)
	w.alpha = a
	if done {
		w.alpha = 1
		w.fade = nil
	}
}

// Draw is called each frame by Ebitengine
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.background)

	if w.backdrop != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(config.BackdropCell, config.BackdropCell)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(w.backdrop, op)
	}

	if img := w.canvas.Image(); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(w.alpha)
		screen.DrawImage(img, op)
	}

	if w.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %0.1f  FPS %0.1f  particles %d  %dx%d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), w.field.Len(), w.width, w.height))
	}
}

// Layout tracks the outside size so the canvas always matches the viewport
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (w *Window) resize(width, height int) {
	w.width, w.height = width, height
	w.field.Resize(width, height)

	if w.backdrop != nil {
		w.backdrop.Deallocate()
		w.backdrop = nil
	}
	if w.noise == nil {
		return
	}
	img := render.Backdrop(w.noise, width, height, config.BackdropCell, w.background, w.cfg.TintRGBA())
	if img != nil {
		w.backdrop = ebiten.NewImageFromImage(img)
	}
}

// Alpha returns the current canvas opacity
func (w *Window) Alpha() float32 {
	return w.alpha
}
