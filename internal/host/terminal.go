package host

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/driftfield/internal/field"
	"github.com/olivierh59500/driftfield/internal/render"
)

// Terminal runs a field on a tcell screen. The field loop runs on the
// calling goroutine; terminal events are pumped on a second one.
type Terminal struct {
	screen   tcell.Screen
	field    *field.Field
	cells    *render.Cells
	interval time.Duration
	logger   *log.Logger
}

// NewTerminal wires f, which must draw onto cells, to an initialised screen.
func NewTerminal(screen tcell.Screen, f *field.Field, cells *render.Cells, interval time.Duration, logger *log.Logger) *Terminal {
	return &Terminal{
		screen:   screen,
		field:    f,
		cells:    cells,
		interval: interval,
		logger:   logger,
	}
}

// Run sizes the field to the screen and animates it until ctx is done or
// the user quits. Quitting is not an error.
func (t *Terminal) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t.resize(t.screen.Size())

	events := make(chan tcell.Event, 16)
	go t.pollEvents(ctx, events)
	go t.handleEvents(ctx, cancel, events)

	frames := field.NewTickerScheduler(t.interval, t.screen.Show)
	defer frames.Stop()

	t.logger.Printf("terminal loop started")
	err := t.field.Run(ctx, frames)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents forwards screen events until the screen is finalised.
func (t *Terminal) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (t *Terminal) handleEvents(ctx context.Context, cancel context.CancelFunc, events <-chan tcell.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !t.handle(ev) {
				cancel()
				return
			}
		}
	}
}

// handle applies one event and reports whether the loop should continue.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.resize(ev.Size())
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return false
			}
		}
	}
	return true
}

func (t *Terminal) resize(cols, rows int) {
	t.field.Resize(t.cells.VirtualSize(cols, rows))
}
