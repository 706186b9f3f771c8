// Package sprite holds the fish catalog and turns textual sprites into
// sparse ink cells.
//
//   - [Definition]: a multi-line glyph pattern with color and weight
//   - [Normalize]: lines → left-anchored ink cells plus bounding box
//   - [Mirror]: the leftward-facing variant of a shape
//   - [Pick]: weighted selection from a catalog
package sprite
