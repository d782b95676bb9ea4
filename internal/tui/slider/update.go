package slidertui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/its-just-ui/justui-go/pkg/slider"
)

// Update routes terminal input to the engines.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKeyPress forwards value keys to the focused engine and handles
// focus movement locally.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1), nil

	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1), nil
	}

	if eng := m.activeEngine(); eng != nil {
		if k := m.keys.translate(msg); k != slider.KeyNone {
			eng.KeyDown(k)
		}
	}
	return m, nil
}

// moveFocus shifts keyboard focus by delta through the flattened thumb
// order, blurring the engine being left.
func (m Model) moveFocus(delta int) Model {
	targets := m.focusTargets()
	if len(targets) == 0 {
		return m
	}

	current := 0
	for i, ref := range targets {
		if ref == m.active {
			current = i
			break
		}
	}

	next := targets[(current+delta+len(targets))%len(targets)]
	if next.row != m.active.row {
		m.rows[m.active.row].engine.Blur()
	}
	m.rows[next.row].engine.Focus(next.thumb)
	m.active = next
	return m
}

// handleMouse maps pointer events onto engine drag sessions. Press begins a
// session on the row whose track line the press hits; motion and release go
// to the row owning the live session regardless of where the pointer has
// wandered.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for i := range m.rows {
			if m.rows[i].trackRow != msg.Y {
				continue
			}
			eng := m.rows[i].engine
			eng.PointerDown(float64(msg.X-trackIndent), m.rows[i].view.Track())
			// Only steal focus once the press actually started a session;
			// a press swallowed by a disabled or read-only slider must not
			// blur the engine that currently holds it.
			if eng.State() == slider.StateDragging {
				if m.active.row != i {
					m.rows[m.active.row].engine.Blur()
				}
				m.dragging = i
				m.active = focusRef{row: i, thumb: eng.FocusedIndex()}
				m.log.Debug("drag session started")
			}
			break
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.dragging >= 0 {
			r := m.rows[m.dragging]
			r.engine.PointerMove(float64(msg.X-trackIndent), r.view.Track())
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.dragging >= 0 {
			r := m.rows[m.dragging]
			r.engine.PointerUp(float64(msg.X-trackIndent), r.view.Track())
			m.dragging = -1
			m.log.Debug("drag session ended")
		}
		return m, nil
	}

	return m, nil
}
