package colorpicker

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/its-just-ui/justui-go/pkg/slider"
)

// Update routes keyboard input: tab cycles channels, everything else goes
// to the active channel's engine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case "tab":
		return m.cycle(1), nil

	case "shift+tab":
		return m.cycle(-1), nil
	}

	if k := translateKey(keyMsg.String()); k != slider.KeyNone {
		m.engines[m.active].KeyDown(k)
	}
	return m, nil
}

func (m Model) cycle(delta int) Model {
	m.engines[m.active].Blur()
	m.active = channel((int(m.active) + delta + int(channelCount)) % int(channelCount))
	m.engines[m.active].Focus(0)
	return m
}

func translateKey(s string) slider.Key {
	switch s {
	case "left", "h":
		return slider.KeyArrowLeft
	case "right", "l":
		return slider.KeyArrowRight
	case "up", "k":
		return slider.KeyArrowUp
	case "down", "j":
		return slider.KeyArrowDown
	case "pgup":
		return slider.KeyPageUp
	case "pgdown":
		return slider.KeyPageDown
	case "home":
		return slider.KeyHome
	case "end":
		return slider.KeyEnd
	default:
		return slider.KeyNone
	}
}
