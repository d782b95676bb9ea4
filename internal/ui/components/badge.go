package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small status indicator component.
type Badge struct {
	BaseComponent
	text    string
	variant Variant
	theme   Theme
}

// NewBadge creates a badge with the given text and the default theme.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       VariantDefault,
		theme:         DefaultTheme(),
	}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant Variant) *Badge {
	b.variant = variant
	return b
}

// WithTheme sets the theme used for rendering.
func (b *Badge) WithTheme(theme Theme) *Badge {
	b.theme = theme
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// View renders the badge.
func (b *Badge) View() string {
	style := b.ComputeStyle(b.theme).
		Bold(true).
		Padding(0, 1).
		Foreground(b.theme.VariantColor(b.variant)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(b.theme.VariantColor(b.variant))
	return style.Render(b.text)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantSuccess)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantError)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantInfo)
}
