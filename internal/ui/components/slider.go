package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/its-just-ui/justui-go/pkg/slider"
)

const defaultSliderWidth = 40

// Slider renders one engine instance as a horizontal track with thumbs,
// fill and marks. It is a pure view: it reads the engine's public queries
// and never feeds input back into it.
type Slider struct {
	BaseComponent
	engine     *slider.Engine
	theme      Theme
	width      int
	label      string
	showValues bool
	disabled   bool
}

// NewSlider creates a slider view over the given engine.
func NewSlider(engine *slider.Engine) *Slider {
	return &Slider{
		BaseComponent: NewBaseComponent(),
		engine:        engine,
		theme:         DefaultTheme(),
		width:         defaultSliderWidth,
		showValues:    true,
	}
}

// WithWidth sets the track width in cells (minimum 2).
func (s *Slider) WithWidth(width int) *Slider {
	if width < 2 {
		width = 2
	}
	s.width = width
	return s
}

// WithLabel sets a label rendered before the value readout.
func (s *Slider) WithLabel(label string) *Slider {
	s.label = label
	return s
}

// WithTheme sets the theme used for rendering.
func (s *Slider) WithTheme(theme Theme) *Slider {
	s.theme = theme
	return s
}

// WithDisabledStyle renders the track in the disabled color.
func (s *Slider) WithDisabledStyle(disabled bool) *Slider {
	s.disabled = disabled
	return s
}

// WithValueReadout toggles the value line above the track.
func (s *Slider) WithValueReadout(show bool) *Slider {
	s.showValues = show
	return s
}

// Track returns the geometry the host should feed pointer events with: cell
// offsets along the rendered track, before any indentation the host adds.
func (s *Slider) Track() slider.TrackGeometry {
	return slider.TrackGeometry{Start: 0, Length: float64(s.width - 1)}
}

// cellOf maps a track percentage onto a cell index.
func (s *Slider) cellOf(pct float64) int {
	return int(math.Round(pct / 100 * float64(s.width-1)))
}

// View renders the slider: an optional readout line, the track line, and a
// mark label line when marks are present.
func (s *Slider) View() string {
	colors := s.theme.Slider

	trackStyle := lipgloss.NewStyle().Foreground(colors.Track)
	fillStyle := lipgloss.NewStyle().Foreground(colors.Filled)
	thumbStyle := lipgloss.NewStyle().Foreground(colors.Thumb).Bold(true)
	focusStyle := lipgloss.NewStyle().Foreground(colors.Focused).Bold(true)
	markStyle := lipgloss.NewStyle().Foreground(colors.Mark)
	if s.disabled {
		muted := lipgloss.NewStyle().Foreground(colors.Disabled)
		trackStyle, fillStyle, thumbStyle, focusStyle, markStyle = muted, muted, muted, muted, muted
	}

	thumbCells := make(map[int]int)
	for i := 0; i < s.engine.ThumbCount(); i++ {
		pct, err := s.engine.PercentageOf(i)
		if err != nil {
			continue
		}
		cell := s.cellOf(pct)
		if _, taken := thumbCells[cell]; !taken {
			thumbCells[cell] = i
		}
	}

	markCells := make(map[int]struct{})
	for _, m := range s.engine.Marks() {
		markCells[s.cellOf(s.engine.Space().ToPercentage(m.Value))] = struct{}{}
	}

	fillLo, fillHi := s.fillRange()

	var track strings.Builder
	for cell := 0; cell < s.width; cell++ {
		if index, ok := thumbCells[cell]; ok {
			style := thumbStyle
			if index == s.engine.FocusedIndex() {
				style = focusStyle
			}
			track.WriteString(style.Render("●"))
			continue
		}
		if _, ok := markCells[cell]; ok {
			track.WriteString(markStyle.Render("┼"))
			continue
		}
		if cell >= fillLo && cell <= fillHi {
			track.WriteString(fillStyle.Render("━"))
			continue
		}
		track.WriteString(trackStyle.Render("─"))
	}

	lines := make([]string, 0, 3)
	if s.showValues {
		lines = append(lines, s.readout())
	}
	lines = append(lines, track.String())
	if labels := s.markLabels(markStyle); labels != "" {
		lines = append(lines, labels)
	}
	return strings.Join(lines, "\n")
}

// fillRange returns the inclusive cell range to draw filled: from the track
// start to the thumb for single sliders, between the outer thumbs for range
// sliders.
func (s *Slider) fillRange() (int, int) {
	first, err := s.engine.PercentageOf(0)
	if err != nil {
		return 0, -1
	}
	if s.engine.ThumbCount() == 1 {
		return 0, s.cellOf(first)
	}
	last, err := s.engine.PercentageOf(s.engine.ThumbCount() - 1)
	if err != nil {
		return 0, -1
	}
	return s.cellOf(first), s.cellOf(last)
}

// readout renders the label and current values.
func (s *Slider) readout() string {
	values := s.engine.CurrentValues()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	text := strings.Join(parts, " – ")
	if s.label != "" {
		text = s.label + ": " + text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(s.theme.Slider.Label).Render(text)
}

// markLabels renders mark labels under their track cells. Labels that would
// overlap a previous one are dropped rather than shifted.
func (s *Slider) markLabels(style lipgloss.Style) string {
	marks := s.engine.Marks()
	if len(marks) == 0 {
		return ""
	}

	row := make([]rune, 0, s.width)
	for _, m := range marks {
		if m.Label == "" {
			continue
		}
		cell := s.cellOf(s.engine.Space().ToPercentage(m.Value))
		if cell < len(row) {
			continue
		}
		for len(row) < cell {
			row = append(row, ' ')
		}
		row = append(row, []rune(m.Label)...)
	}
	if len(row) == 0 {
		return ""
	}
	return style.Render(string(row))
}
