package sprite

// InkCell is one non-blank character of a sprite, relative to the top-left
// corner of its bounding box.
type InkCell struct {
	X, Y int
	Char rune
}

// Shape is a normalized sprite.
type Shape struct {
	Cells  []InkCell
	Width  int
	Height int
}

// Empty reports whether the shape has no ink.
func (s Shape) Empty() bool { return len(s.Cells) == 0 }

// Normalize converts sprite lines into ink cells. Spaces are transparent and
// leading padding shared by all lines is removed.
func Normalize(lines []string) Shape {
	var cells []InkCell
	minX, maxX, maxY := -1, -1, -1

	for y, line := range lines {
		x := 0
		for _, ch := range line {
			if ch != ' ' {
				cells = append(cells, InkCell{X: x, Y: y, Char: ch})
				if minX < 0 || x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
			x++
		}
	}

	if len(cells) == 0 {
		return Shape{}
	}

	for i := range cells {
		cells[i].X -= minX
	}

	return Shape{
		Cells:  cells,
		Width:  maxX - minX + 1,
		Height: maxY + 1,
	}
}

// MirrorRune swaps directional characters; anything else is returned as is.
func MirrorRune(ch rune) rune {
	switch ch {
	case '<':
		return '>'
	case '>':
		return '<'
	case '(':
		return ')'
	case ')':
		return '('
	case '/':
		return '\\'
	case '\\':
		return '/'
	case '[':
		return ']'
	case ']':
		return '['
	case '{':
		return '}'
	case '}':
		return '{'
	}
	return ch
}

// Mirror flips cells horizontally within width, mirroring characters too.
func Mirror(cells []InkCell, width int) []InkCell {
	out := make([]InkCell, len(cells))
	for i, c := range cells {
		out[i] = InkCell{X: width - 1 - c.X, Y: c.Y, Char: MirrorRune(c.Char)}
	}
	return out
}

// Mirrored returns the horizontally flipped shape.
func (s Shape) Mirrored() Shape {
	return Shape{Cells: Mirror(s.Cells, s.Width), Width: s.Width, Height: s.Height}
}
