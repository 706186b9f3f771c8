package aquarium

import "strings"

// Cell is one character of the grid with its display color.
type Cell struct {
	Char  rune
	Color string
}

// Grid is a rows × cols buffer of cells.
type Grid struct {
	Cols, Rows int
	Cells      [][]Cell
}

// NewGrid allocates a grid filled with blanks of color bg.
func NewGrid(cols, rows int, bg string) *Grid {
	g := &Grid{
		Cols:  cols,
		Rows:  rows,
		Cells: make([][]Cell, rows),
	}
	for y := range g.Cells {
		g.Cells[y] = make([]Cell, cols)
	}
	g.Reset(bg)
	return g
}

// Reset sets every cell to a blank of color bg.
func (g *Grid) Reset(bg string) {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = Cell{Char: ' ', Color: bg}
		}
	}
}

// In reports whether (x, y) lies on the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// Set paints a cell; off-grid writes are dropped.
func (g *Grid) Set(x, y int, ch rune, color string) bool {
	if !g.In(x, y) {
		return false
	}
	g.Cells[y][x] = Cell{Char: ch, Color: color}
	return true
}

// At returns the cell at (x, y), or a zero cell when off-grid.
func (g *Grid) At(x, y int) Cell {
	if !g.In(x, y) {
		return Cell{}
	}
	return g.Cells[y][x]
}

// Ink counts non-blank cells.
func (g *Grid) Ink() int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c.Char != ' ' {
				n++
			}
		}
	}
	return n
}

func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.Cells {
		for _, c := range row {
			b.WriteRune(c.Char)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
