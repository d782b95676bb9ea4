package slidertui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// headerHeight is the number of lines above the first slider block.
const headerHeight = 2

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	indentStyle = lipgloss.NewStyle().
			PaddingLeft(trackIndent)
)

// View renders the header, every slider block, and the help footer. The
// layout must stay in lockstep with relayout: readout, track, optional mark
// labels, blank line per slider.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("just-ui sliders"))
	b.WriteString("\n\n")

	for _, r := range m.rows {
		b.WriteString(indentStyle.Render(r.view.View()))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("tab: next thumb • ←/→ ↑/↓ pgup/pgdn home/end: adjust • mouse: drag • q: quit"))
	return b.String()
}
