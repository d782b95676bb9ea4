package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Variant selects the semantic color of badges and alerts.
type Variant int

const (
	VariantDefault Variant = iota
	VariantPrimary
	VariantSuccess
	VariantWarning
	VariantError
	VariantInfo
)

// SliderColors groups the colors used by the slider track renderer.
type SliderColors struct {
	Track    lipgloss.AdaptiveColor
	Filled   lipgloss.AdaptiveColor
	Thumb    lipgloss.AdaptiveColor
	Focused  lipgloss.AdaptiveColor
	Disabled lipgloss.AdaptiveColor
	Mark     lipgloss.AdaptiveColor
	Label    lipgloss.AdaptiveColor
}

// Theme is an immutable bundle of colors for the component layer. Pass it
// explicitly; components never consult global state.
type Theme struct {
	Variants map[Variant]lipgloss.AdaptiveColor
	Slider   SliderColors
}

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme {
	return Theme{
		Variants: map[Variant]lipgloss.AdaptiveColor{
			VariantDefault: {Light: "240", Dark: "250"},
			VariantPrimary: {Light: "99", Dark: "99"},
			VariantSuccess: {Light: "28", Dark: "42"},
			VariantWarning: {Light: "178", Dark: "226"},
			VariantError:   {Light: "160", Dark: "196"},
			VariantInfo:    {Light: "32", Dark: "45"},
		},
		Slider: SliderColors{
			Track:    lipgloss.AdaptiveColor{Light: "250", Dark: "238"},
			Filled:   lipgloss.AdaptiveColor{Light: "99", Dark: "99"},
			Thumb:    lipgloss.AdaptiveColor{Light: "99", Dark: "212"},
			Focused:  lipgloss.AdaptiveColor{Light: "201", Dark: "212"},
			Disabled: lipgloss.AdaptiveColor{Light: "250", Dark: "240"},
			Mark:     lipgloss.AdaptiveColor{Light: "245", Dark: "245"},
			Label:    lipgloss.AdaptiveColor{Light: "240", Dark: "250"},
		},
	}
}

// VariantColor resolves the color for a variant, falling back to default.
func (t Theme) VariantColor(v Variant) lipgloss.AdaptiveColor {
	if c, ok := t.Variants[v]; ok {
		return c
	}
	return t.Variants[VariantDefault]
}
