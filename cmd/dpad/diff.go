package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/grindlemire/go-dpad/internal/config"
)

// runDiff implements the diff subcommand.
// It builds the neighbor graph of two layout files and prints a unified diff
// of their text tables, which shows how an edit changed navigation.
func runDiff(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	cone := fs.Float64("cone", 0, "Cone half-angle in degrees (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("diff takes two layout files")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *cone != 0 {
		cfg.Nav.ConeAngle = *cone
	}

	from, to := fs.Arg(0), fs.Arg(1)
	a, err := graphTable(cfg, from)
	if err != nil {
		return err
	}
	b, err := graphTable(cfg, to)
	if err != nil {
		return err
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: from,
		ToFile:   to,
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("diffing graphs: %w", err)
	}
	if diff == "" {
		fmt.Fprintln(stdout, "neighbor graphs are identical")
		return nil
	}
	fmt.Fprint(stdout, diff)
	return nil
}

// graphTable returns the text neighbor table of the layout at path, with
// regions named as in the file.
func graphTable(cfg config.Config, path string) (string, error) {
	ctrl, _, err := buildGraph(cfg, path)
	if err != nil {
		return "", err
	}
	return ctrl.DumpGraph(func(i int) string {
		return regionName(ctrl, i)
	}), nil
}
