package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"conway/internal/app"
	"conway/internal/config"
	"conway/internal/console"
	"conway/internal/seed"
	"conway/internal/term"
	"conway/pkg/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg, err := config.Parse("life", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}

	grid, err := initialGrid(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.Pattern != "" {
		log.Printf("starting %s pattern on a %s %s grid", cfg.Pattern, grid.Size(), grid.Edge())
	} else {
		log.Printf("starting random %s %s grid (density %g, seed %d)", grid.Size(), grid.Edge(), cfg.Density, cfg.Seed)
	}

	switch cfg.Display {
	case config.DisplayPlain:
		err = run(ctx, grid, console.New(os.Stdout, cfg.AliveChar, cfg.DeadChar, true), cfg)
	case config.DisplayWindow:
		w := app.NewWindow(grid.Size(), cfg.Scale, os.Stdout, cancel)
		var engine *life.Engine
		engine, err = life.NewEngine(grid, w, life.WithDelay(cfg.Delay))
		if err == nil {
			err = app.Run(ctx, engine, w, "Conway's Game of Life")
		}
	default:
		err = runTerminal(ctx, cancel, grid, cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func initialGrid(cfg config.Config) (*life.Grid, error) {
	size, err := cfg.Size()
	if err != nil {
		return nil, err
	}
	edge, err := cfg.EdgePolicy()
	if err != nil {
		return nil, err
	}
	if cfg.Pattern != "" {
		return seed.Pattern(size, edge, cfg.Pattern)
	}
	return seed.Random(size, edge, cfg.Density, cfg.Seed), nil
}

func run(ctx context.Context, grid *life.Grid, display life.Display, cfg config.Config) error {
	engine, err := life.NewEngine(grid, display, life.WithDelay(cfg.Delay))
	if err != nil {
		return err
	}
	_, err = engine.Run(ctx)
	return err
}

func runTerminal(ctx context.Context, cancel context.CancelFunc, grid *life.Grid, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	display := term.New(screen, os.Stdout, cfg.AliveChar, cfg.DeadChar)
	defer display.Close()
	go display.HandleInput(cancel)
	return run(ctx, grid, display, cfg)
}
