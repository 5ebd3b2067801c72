package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/grindlemire/go-dpad"
	"github.com/grindlemire/go-dpad/internal/config"
	"github.com/grindlemire/go-dpad/pkg/layoutfile"
)

type graphOutput struct {
	Name    string         `json:"name"`
	Focused int            `json:"focused"`
	Regions []regionOutput `json:"regions"`
	Links   []linkOutput   `json:"links"`
}

type regionOutput struct {
	Index     int            `json:"index"`
	Name      string         `json:"name"`
	Label     string         `json:"label,omitempty"`
	Focusable bool           `json:"focusable"`
	Neighbors map[string]int `json:"neighbors,omitempty"`
}

type linkOutput struct {
	From      int    `json:"from"`
	To        int    `json:"to"`
	Direction string `json:"direction"`
	Distance  int    `json:"distance"`
}

// runGraph implements the graph subcommand.
// It loads one layout, rebuilds the neighbor graph and prints it.
func runGraph(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("graph", flag.ContinueOnError)
	cone := fs.Float64("cone", 0, "Cone half-angle in degrees (default from config)")
	asJSON := fs.Bool("json", false, "Print JSON instead of the text table")
	from := fs.String("from", "", "Walk the graph from this region (needs -dir)")
	dirName := fs.String("dir", "", "Direction to walk from -from: up, down, left or right")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("graph takes exactly one layout file")
	}
	if (*from == "") != (*dirName == "") {
		return fmt.Errorf("-from and -dir must be given together")
	}
	var dir dpad.Direction
	if *dirName != "" {
		d, ok := dpad.ParseDirection(*dirName)
		if !ok {
			return fmt.Errorf("unknown direction %q", *dirName)
		}
		dir = d
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *cone != 0 {
		cfg.Nav.ConeAngle = *cone
	}

	ctrl, layout, err := buildGraph(cfg, fs.Arg(0))
	if err != nil {
		return err
	}

	if *from != "" {
		return walk(stdout, ctrl, layout, *from, dir)
	}
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(graphJSON(ctrl, layout))
	}

	fmt.Fprintf(stdout, "%s (%d regions, cone %g°)\n", layout.Name, ctrl.Len(), cfg.Nav.ConeAngle)
	fmt.Fprint(stdout, ctrl.DumpGraph(func(i int) string {
		return regionName(ctrl, i)
	}))
	return nil
}

// regionName names region i the way the layout file does, so output is
// stable across loads of the same file.
func regionName(ctrl *dpad.Controller, i int) string {
	r := ctrl.Region(i)
	if b, ok := r.Element().(*layoutfile.Box); ok {
		return b.Name()
	}
	return r.ID()
}

// walk prints the regions visited by pressing d repeatedly, starting at the
// region named start, e.g. "a -> b -> c".
func walk(w io.Writer, ctrl *dpad.Controller, layout *layoutfile.Layout, start string, d dpad.Direction) error {
	idx := -1
	for _, b := range layout.Boxes {
		if b.Name() == start {
			idx = ctrl.IndexOf(b)
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no region named %q", start)
	}
	if !ctrl.Region(idx).IsFocusable() {
		return fmt.Errorf("region %s is not focusable", start)
	}

	ctrl.FocusIndex(idx)
	path := []string{start}
	seen := map[int]bool{idx: true}
	for ctrl.MoveFocus(d) {
		next := ctrl.FocusedIndex()
		path = append(path, regionName(ctrl, next))
		if seen[next] {
			break
		}
		seen[next] = true
	}
	fmt.Fprintln(w, strings.Join(path, " -> "))
	return nil
}

// buildGraph loads path into a fresh controller configured from cfg and
// focuses the layout's initial region.
func buildGraph(cfg config.Config, path string) (*dpad.Controller, *layoutfile.Layout, error) {
	ctrl, err := dpad.NewController(cfg.ControllerOptions()...)
	if err != nil {
		return nil, nil, err
	}
	layout, err := layoutfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if err := layout.Register(ctrl); err != nil {
		return nil, nil, err
	}
	ctrl.Rebuild()
	layout.FocusInitial(ctrl)
	return ctrl, layout, nil
}

func graphJSON(ctrl *dpad.Controller, layout *layoutfile.Layout) graphOutput {
	out := graphOutput{
		Name:    layout.Name,
		Focused: ctrl.FocusedIndex(),
		Regions: make([]regionOutput, 0, ctrl.Len()),
		Links:   []linkOutput{},
	}
	for i, r := range ctrl.Regions() {
		ro := regionOutput{
			Index:     i,
			Name:      regionName(ctrl, i),
			Focusable: r.IsFocusable(),
		}
		if b, ok := r.Element().(*layoutfile.Box); ok {
			ro.Label = b.Label()
		}
		for _, d := range dpad.Directions {
			if to, ok := r.Neighbor(d); ok {
				if ro.Neighbors == nil {
					ro.Neighbors = make(map[string]int, len(dpad.Directions))
				}
				ro.Neighbors[d.String()] = to
			}
		}
		out.Regions = append(out.Regions, ro)
	}
	for _, l := range ctrl.Links() {
		out.Links = append(out.Links, linkOutput{
			From:      l.From,
			To:        l.To,
			Direction: l.Direction.String(),
			Distance:  l.Distance,
		})
	}
	return out
}
