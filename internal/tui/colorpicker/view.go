package colorpicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// View renders the four channel sliders and a live preview swatch.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("just-ui color picker"))
	b.WriteString("\n\n")

	for ch := channelHue; ch < channelCount; ch++ {
		b.WriteString(m.views[ch].View())
		b.WriteString("\n\n")
	}

	hex := m.color().Hex()
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Padding(0, 6).
		Render(" ")
	b.WriteString(fmt.Sprintf("%s  %s (alpha %.0f%%)\n\n", swatch, hex, m.value(channelAlpha)))

	b.WriteString(helpStyle.Render("tab: next channel • ←/→: adjust • q: quit"))
	return b.String()
}
