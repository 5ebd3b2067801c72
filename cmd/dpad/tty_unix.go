//go:build unix

package main

import (
	"golang.org/x/sys/unix"
)

// terminalSize returns the dimensions of the terminal on fd. It fails when
// fd is not a terminal.
func terminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
