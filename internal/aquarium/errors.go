package aquarium

import "errors"

var (
	// ErrNoSurface indicates the host has no display surface to paint into.
	ErrNoSurface = errors.New("aquarium: no display surface")

	// ErrEmptyCatalog indicates a scene was asked to spawn fish from an empty catalog.
	ErrEmptyCatalog = errors.New("aquarium: empty sprite catalog")

	// ErrUnknownPalette indicates a palette name that is not registered.
	ErrUnknownPalette = errors.New("aquarium: unknown palette")
)
