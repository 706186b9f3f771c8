// Package driver runs the aquarium against a host surface.
//
// The driver measures the surface, builds a [aquarium.Scene], and then
// composites and renders one frame per tick until its context is cancelled.
// Resize signals are debounced and rebuild the scene from scratch on the
// loop goroutine, so a re-initialization never overlaps a frame.
package driver
