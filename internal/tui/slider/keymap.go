package slidertui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/its-just-ui/justui-go/pkg/slider"
)

// KeyMap declares the bindings the slider demo understands. Arrow and
// paging keys go to the engine; tab moves focus between thumbs.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next thumb")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev thumb")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrement")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increment")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "increment")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "decrement")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "+10 steps")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "-10 steps")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "minimum")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "maximum")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// translate maps a terminal key press onto an engine key. Unbound presses
// map to KeyNone, which the engine ignores.
func (k KeyMap) translate(msg tea.KeyMsg) slider.Key {
	switch {
	case key.Matches(msg, k.Left):
		return slider.KeyArrowLeft
	case key.Matches(msg, k.Right):
		return slider.KeyArrowRight
	case key.Matches(msg, k.Up):
		return slider.KeyArrowUp
	case key.Matches(msg, k.Down):
		return slider.KeyArrowDown
	case key.Matches(msg, k.PageUp):
		return slider.KeyPageUp
	case key.Matches(msg, k.PageDown):
		return slider.KeyPageDown
	case key.Matches(msg, k.Home):
		return slider.KeyHome
	case key.Matches(msg, k.End):
		return slider.KeyEnd
	default:
		return slider.KeyNone
	}
}
