package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/go-dpad"
	"github.com/grindlemire/go-dpad/internal/config"
	"github.com/grindlemire/go-dpad/pkg/layoutfile"
)

// runCheck implements the check subcommand.
// It loads and validates each layout file without showing it.
func runCheck(args []string, stdout, stderr io.Writer) error {
	verbose := false
	var paths []string

	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		return fmt.Errorf("no layout files given")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var errorCount int
	for _, path := range paths {
		l, err := layoutfile.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			errorCount++
			continue
		}
		for _, w := range l.Warnings() {
			fmt.Fprintf(stdout, "%s: warning: %s\n", path, w)
		}
		if verbose {
			fmt.Fprintf(stdout, "%s: ok (%d regions)\n", path, len(l.Boxes))
			if err := reportOneWay(stdout, cfg, path, l); err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", path, err)
				errorCount++
			}
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if verbose {
		fmt.Fprintf(stdout, "All %d file(s) passed checks\n", len(paths))
	}
	return nil
}

// reportOneWay lists links of l that do not lead back the opposite way.
func reportOneWay(w io.Writer, cfg config.Config, path string, l *layoutfile.Layout) error {
	ctrl, err := dpad.NewController(cfg.ControllerOptions()...)
	if err != nil {
		return err
	}
	if err := l.Register(ctrl); err != nil {
		return err
	}
	ctrl.Rebuild()
	for _, link := range ctrl.OneWayLinks() {
		fmt.Fprintf(w, "%s: one-way: %s -%s-> %s\n", path,
			regionName(ctrl, link.From), link.Direction, regionName(ctrl, link.To))
	}
	return nil
}
