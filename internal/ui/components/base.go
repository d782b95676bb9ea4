package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Renderable is anything that can render itself to a string.
type Renderable interface {
	View() string
}

// StyleFunc applies a theme-aware transformation to a lipgloss style. It is
// the composition point for component styling.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent carries the style state shared by all components. Embed it
// to get themed style computation.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle resolves the component's style against the given theme by
// applying every registered applier in order.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends theme-aware style appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	b.appliers = append(b.appliers, appliers...)
}
