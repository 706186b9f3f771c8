// Package tui hosts the aquarium in a terminal.
//
//   - [Model]: a Bubble Tea program; window resizes are debounced with
//     tagged tick messages
//   - [LiveRenderer]: a plain ANSI writer driven by the frame loop, for
//     terminals where a full-screen program is unwanted
//
// Both report a nominal [CellWidth] x [CellHeight] glyph so the grid size
// follows the terminal's columns and rows.
package tui
