// Package main provides the dpad CLI for inspecting and trying out
// directional focus layouts.
//
// Usage:
//
//	dpad graph [-cone N] [-json] layout.yaml   Print the neighbor graph
//	dpad diff old.yaml new.yaml                Compare two neighbor graphs
//	dpad check layout.yaml...                  Validate layout files
//	dpad run [-watch] [-fallback] layout.yaml  Navigate a layout in the terminal
//	dpad help                                  Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `dpad - directional focus navigation for rectangular layouts

Usage:
  dpad <command> [options] [path...]

Commands:
  graph       Build the neighbor graph of a layout file and print it
  diff        Show how the neighbor graph differs between two layout files
  check       Validate layout files
  run         Navigate a layout interactively in the terminal
  version     Print version information
  help        Show this help message

Examples:
  dpad graph screens/home.yaml            Print each region's neighbors
  dpad graph -cone 60 screens/home.yaml   Use a wider search cone
  dpad graph -json screens/home.yaml      Machine-readable graph and links
  dpad graph -from play -dir right screens/home.yaml
                                          Follow one direction from a region
  dpad diff old.yaml new.yaml             See which links an edit changed
  dpad check screens/*.yaml               Validate several layouts
  dpad check -v screens/home.yaml         Also list one-way links
  dpad run -watch screens/home.yaml       Reload the layout when it changes

Configuration is read from $DPAD_CONFIG or ~/.config/dpad/config.toml and
can be overridden with DPAD_* environment variables (e.g. DPAD_NAV_CONE_ANGLE).
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "graph":
		if err := runGraph(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "diff":
		if err := runDiff(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args, os.Stdout, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "run":
		if err := runRun(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("dpad version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
