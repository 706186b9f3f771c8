package tui

import "sync"

// Terminals expose no trustworthy pixel metrics, so a nominal cell is used
// and the surface reports cols*CellWidth by rows*CellHeight.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Surface is a terminal-backed display surface sized in character cells.
type Surface struct {
	mu     sync.Mutex
	cols   int
	rows   int
	markup string
}

func NewSurface(cols, rows int) *Surface {
	return &Surface{cols: cols, rows: rows}
}

// SetSize records a new terminal size and reports whether it changed.
func (s *Surface) SetSize(cols, rows int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cols == s.cols && rows == s.rows {
		return false
	}
	s.cols, s.rows = cols, rows
	return true
}

func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols, s.rows
}

func (s *Surface) Bounds() (float64, float64) {
	cols, rows := s.Size()
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

func (s *Surface) Probe(rune) (float64, float64) { return CellWidth, CellHeight }

func (s *Surface) Replace(markup string) {
	s.mu.Lock()
	s.markup = markup
	s.mu.Unlock()
}

// Markup returns the last frame handed to the surface.
func (s *Surface) Markup() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.markup
}
