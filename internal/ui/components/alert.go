package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Alert is a bordered notification message.
type Alert struct {
	BaseComponent
	message string
	title   string
	icon    string
	variant Variant
	theme   Theme
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		icon:          "ℹ",
		variant:       VariantInfo,
		theme:         DefaultTheme(),
	}
}

// WithTitle sets an emphasized title line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithVariant sets the alert variant and its conventional icon.
func (a *Alert) WithVariant(variant Variant) *Alert {
	a.variant = variant
	switch variant {
	case VariantSuccess:
		a.icon = "✓"
	case VariantWarning:
		a.icon = "⚠"
	case VariantError:
		a.icon = "✗"
	default:
		a.icon = "ℹ"
	}
	return a
}

// WithTheme sets the theme used for rendering.
func (a *Alert) WithTheme(theme Theme) *Alert {
	a.theme = theme
	return a
}

// View renders the alert.
func (a *Alert) View() string {
	color := a.theme.VariantColor(a.variant)

	body := a.icon + " " + a.message
	if a.title != "" {
		title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(a.title)
		body = title + "\n" + body
	}

	style := a.ComputeStyle(a.theme).
		Padding(0, 1).
		Border(lipgloss.NormalBorder()).
		BorderForeground(color)
	return style.Render(body)
}
