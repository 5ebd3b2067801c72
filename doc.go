// Package dpad provides directional ("d-pad style") focus navigation over a
// set of rectangular regions.
//
// A host wraps each navigable UI element in an Element, registers it with a
// Controller and calls Rebuild whenever layout changes. Rebuild computes,
// for every focusable region, its nearest neighbor in each of the four
// cardinal directions. Directional input then moves a single focus along
// those precomputed links:
//
//	c := dpad.MustNewController()
//	for _, e := range elements {
//		if _, err := c.Register(e); err != nil {
//			return err
//		}
//	}
//	c.Rebuild()
//	c.FocusIndex(0)
//	c.MoveFocus(dpad.Right)
//	c.Activate()
//
// The engine never fails at runtime: empty registries, missing neighbors and
// out-of-range indices are all no-ops. Errors are only returned for wiring
// mistakes such as registering a nil element.
package dpad
