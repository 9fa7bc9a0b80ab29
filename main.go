package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/driftfield/internal/config"
	"github.com/olivierh59500/driftfield/internal/field"
	"github.com/olivierh59500/driftfield/internal/host"
	"github.com/olivierh59500/driftfield/internal/render"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := log.New(os.Stderr, "driftfield: ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Backend {
	case config.BackendTerminal:
		err = runTerminal(ctx, cfg)
	default:
		err = runWindow(ctx, cfg, logger)
	}
	if err != nil {
		log.Fatal(err)
	}
	logger.Printf("%s backend stopped", cfg.Backend)
}

func fieldOptions(cfg config.Config, logger *log.Logger) []field.Option {
	opts := []field.Option{
		field.WithHue(cfg.ParticleRGBA()),
		field.WithRand(rand.New(rand.NewSource(cfg.Seed))),
	}
	if cfg.Verbose {
		opts = append(opts, field.WithLogger(logger))
	}
	return opts
}

func runWindow(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	canvas := render.NewCanvas(true)
	f := field.New(canvas, fieldOptions(cfg, logger)...)

	return host.NewWindow(ctx, cfg, f, canvas, logger).Run()
}

func runTerminal(ctx context.Context, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	// Anything written to stderr would land on top of the field.
	quiet := log.New(io.Discard, "", 0)

	cells := render.NewCells(screen, cfg.CellWidth, cfg.CellHeight, cfg.BackgroundRGBA())
	f := field.New(cells, fieldOptions(cfg, quiet)...)

	return host.NewTerminal(screen, f, cells, cfg.FrameInterval(), quiet).Run(ctx)
}
