// Package termhost shows a layoutfile.Layout on a tcell screen and turns
// key events into dpad controller input.
//
// A Host owns no goroutines of its own. Layouts produced elsewhere, such as
// by layoutfile.Watch, are handed over with PostLayout and applied on the
// goroutine running Run.
package termhost
