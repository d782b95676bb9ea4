package slidertui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/its-just-ui/justui-go/internal/config"
	"github.com/its-just-ui/justui-go/internal/logger"
	"github.com/its-just-ui/justui-go/internal/ui/components"
	"github.com/its-just-ui/justui-go/pkg/slider"
)

// trackIndent is the left margin the sliders render with; pointer x
// coordinates are shifted by it before mapping onto the track.
const trackIndent = 2

// row locates one slider block on screen. trackRow is the absolute line of
// the track so mouse events can be routed to the right engine.
type row struct {
	engine   *slider.Engine
	view     *components.Slider
	preset   config.Preset
	trackRow int
}

// focusRef addresses a single thumb across all sliders.
type focusRef struct {
	row   int
	thumb int
}

// Model is the bubbletea model hosting one engine per preset. It owns the
// translation from terminal input to engine input; all value logic stays in
// the engines.
type Model struct {
	rows     []row
	active   focusRef
	dragging int // row index owning the live pointer drag, -1 when none
	keys     KeyMap
	width    int
	quitting bool
	log      *logger.Logger
}

// New builds a model from presets. Engines are created eagerly so a bad
// preset fails before the program starts.
func New(presets []config.Preset, log *logger.Logger) (Model, error) {
	m := Model{
		keys:     DefaultKeyMap(),
		dragging: -1,
		log:      log.WithComponent("tui.slider"),
	}

	for _, preset := range presets {
		cfg := preset.EngineConfig()
		eng, err := slider.New(cfg)
		if err != nil {
			return Model{}, err
		}

		label := preset.Label
		if label == "" {
			label = preset.ID
		}
		view := components.NewSlider(eng).
			WithLabel(label).
			WithDisabledStyle(preset.Disabled)

		m.rows = append(m.rows, row{engine: eng, view: view, preset: preset})
	}

	m.relayout()
	return m, nil
}

// Init focuses the first thumb.
func (m Model) Init() tea.Cmd {
	if len(m.rows) > 0 {
		m.rows[0].engine.Focus(0)
	}
	return nil
}

// Close tears down every engine.
func (m Model) Close() {
	for _, r := range m.rows {
		r.engine.Close()
	}
}

// relayout recomputes the absolute track line of each slider block from the
// fixed view structure: two header lines, then per slider a readout line,
// the track line, an optional mark label line and a blank separator.
func (m *Model) relayout() {
	line := headerHeight
	for i := range m.rows {
		line++ // readout
		m.rows[i].trackRow = line
		line++ // track
		if m.hasMarkLabels(i) {
			line++
		}
		line++ // separator
	}
}

func (m *Model) hasMarkLabels(i int) bool {
	for _, mark := range m.rows[i].engine.Marks() {
		if mark.Label != "" {
			return true
		}
	}
	return false
}

// focusTargets flattens every thumb of every slider into tab order,
// skipping disabled sliders.
func (m Model) focusTargets() []focusRef {
	targets := make([]focusRef, 0, len(m.rows))
	for i, r := range m.rows {
		if r.preset.Disabled {
			continue
		}
		for thumb := 0; thumb < r.engine.ThumbCount(); thumb++ {
			targets = append(targets, focusRef{row: i, thumb: thumb})
		}
	}
	return targets
}

// activeEngine returns the engine owning keyboard focus.
func (m Model) activeEngine() *slider.Engine {
	if len(m.rows) == 0 {
		return nil
	}
	return m.rows[m.active.row].engine
}
