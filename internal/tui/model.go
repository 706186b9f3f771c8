package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/aquarium/internal/driver"
)

type TickMsg time.Time

// resizeMsg carries the sequence number of the resize that scheduled it;
// only the latest one re-initializes.
type resizeMsg struct{ seq int }

// Model hosts the aquarium in a Bubble Tea program.
type Model struct {
	driver   *driver.Driver
	surface  *Surface
	fps      int
	debounce time.Duration

	ready     bool
	resizeSeq int
	err       error
}

// NewModel wraps a driver built on surface. The driver should encode ANSI.
func NewModel(d *driver.Driver, surface *Surface, fps int, debounce time.Duration) Model {
	if fps <= 0 {
		fps = 30
	}
	if debounce <= 0 {
		debounce = driver.DefaultDebounce
	}
	return Model{
		driver:   d,
		surface:  surface,
		fps:      fps,
		debounce: debounce,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		changed := m.surface.SetSize(msg.Width, msg.Height)
		if !m.ready {
			if err := m.driver.Reinit(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.ready = true
			return m, nil
		}
		if !changed {
			return m, nil
		}
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(m.debounce, func(time.Time) tea.Msg { return resizeMsg{seq: seq} })
	case resizeMsg:
		if msg.seq == m.resizeSeq {
			if err := m.driver.Reinit(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	case TickMsg:
		if m.ready {
			m.driver.Frame(time.Time(msg))
		}
		return m, m.tick()
	}
	return m, nil
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.surface.Markup()
}
