package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"pillarwalk/internal/config"
	"pillarwalk/internal/maze"
	"pillarwalk/internal/scene"
	"pillarwalk/internal/term"
	"pillarwalk/internal/world"
)

const ConfigPath = "config/pillarwalk.yaml"

// errQuit carries a user-requested exit through the errgroup so the sibling
// goroutine is cancelled with it; it never escapes runLoop.
var errQuit = errors.New("quit requested")

// eventSource is the part of the terminal the session loop consumes: a
// blocking event feed plus a way to shut it down.
type eventSource interface {
	PollEvent() tcell.Event
	Close()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Log to stderr; stdout belongs to the terminal screen.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfgPath := ConfigPath
	if p := os.Getenv("PILLARWALK_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	slog.Info("config loaded", "fps", cfg.Render.FPS, "maze", fmt.Sprintf("%dx%d", cfg.Maze.Rows, cfg.Maze.Cols))

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	m, err := maze.Generate(cfg.Maze.Rows, cfg.Maze.Cols, cfg.Maze.PortalSpacing, rng)
	if err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}
	pillars := maze.BuildPillars(m)
	walls := maze.BuildWalls(m, pillars)
	slog.Info("world built", "walls", len(walls), "start", m.Start(), "finish", m.Finish())

	screen, err := term.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer screen.Close()

	rows, cols := screen.Size()
	sc := scene.NewScene(rows, cols)
	controls := term.NewControls(cfg.Render.FPS)

	startX, startY := maze.StartPosition(m)
	cam := world.NewCamera(startX, startY, 0,
		cfg.Camera.FOVAngle, cfg.Camera.FillScreenDistance, cfg.Camera.HorizonDistance)

	if err := runLoop(ctx, screen, screen, sc, controls, cam, walls, cfg.Render.FPS); err != nil {
		return fmt.Errorf("session error: %w", err)
	}
	slog.Info("session ended")
	return nil
}

// runLoop runs the event pump and the frame loop until the context is
// cancelled or the user quits. A quit key travels through the errgroup as
// errQuit so the group context cancels the pump even when it is blocked
// handing over an event.
func runLoop(ctx context.Context, src eventSource, d scene.Display, sc scene.Scene,
	controls term.Controls, cam world.Camera, walls []world.Wall, fps int) error {

	events := make(chan tcell.Event, 16)
	g, gctx := errgroup.WithContext(ctx)

	// Event pump: PollEvent returns nil once the source is closed.
	g.Go(func() error {
		for {
			ev := src.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	// Frame loop: fold pending input into one camera update, render, repeat.
	g.Go(func() error {
		defer src.Close()

		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
			}

			forward, angle := 0.0, 0.0
			for drained := false; !drained; {
				select {
				case ev := <-events:
					key, ok := ev.(*tcell.EventKey)
					if !ok {
						continue
					}
					var cmd term.Command
					forward, angle, cmd = controls.Apply(key, forward, angle)
					if cmd == term.CommandQuit {
						return errQuit
					}
				default:
					drained = true
				}
			}

			cam = cam.Update(forward, angle)
			sc.RenderFrame(d, cam, walls)
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
