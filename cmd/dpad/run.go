package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-dpad"
	"github.com/grindlemire/go-dpad/internal/config"
	"github.com/grindlemire/go-dpad/internal/debug"
	"github.com/grindlemire/go-dpad/pkg/layoutfile"
	"github.com/grindlemire/go-dpad/pkg/termhost"
)

// runRun implements the run subcommand.
// It shows a layout in the terminal and navigates it with the arrow keys.
func runRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	watch := fs.Bool("watch", false, "Reload the layout when the file changes")
	fallback := fs.Bool("fallback", false, "Focus the first region when moving with nothing focused")
	wrap := fs.Bool("wrap", false, "Wrap long labels instead of truncating them")
	logPath := fs.String("log", "", "Path to debug log file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("run takes exactly one layout file")
	}
	path := fs.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *fallback {
		cfg.Nav.FocusFallback = true
	}
	if *wrap {
		cfg.UI.WrapLabels = true
	}
	if *logPath != "" {
		cfg.Debug.LogPath = *logPath
	}
	if cfg.Debug.LogPath != "" {
		if err := debug.Init(cfg.Debug.LogPath); err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer debug.Close()
	}

	layout, err := layoutfile.Load(path)
	if err != nil {
		return err
	}
	ctrl, err := dpad.NewController(cfg.ControllerOptions()...)
	if err != nil {
		return err
	}

	if _, _, err := terminalSize(int(os.Stdout.Fd())); err != nil {
		return fmt.Errorf("run needs a terminal: %w", err)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	host, err := termhost.New(screen, ctrl,
		termhost.WithWrapLabels(cfg.UI.WrapLabels),
		termhost.WithOffset(1, 1),
	)
	if err != nil {
		return err
	}
	if err := host.Load(layout); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Leaving the UI loop ends the watcher too.
		defer cancel()
		return host.Run(ctx)
	})
	if *watch {
		g.Go(func() error {
			return layoutfile.Watch(ctx, path, cfg.Watch.Debounce, func(l *layoutfile.Layout, err error) {
				if perr := host.PostLayout(l, err); perr != nil {
					debug.Log("run: dropping reload: %v", perr)
				}
			})
		})
	}
	return g.Wait()
}
