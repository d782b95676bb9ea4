package colorpicker

import (
	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/its-just-ui/justui-go/internal/logger"
	"github.com/its-just-ui/justui-go/internal/ui/components"
	"github.com/its-just-ui/justui-go/pkg/slider"
)

// channel indexes into the picker's four engines.
type channel int

const (
	channelHue channel = iota
	channelSaturation
	channelLightness
	channelAlpha
	channelCount
)

func (c channel) String() string {
	switch c {
	case channelHue:
		return "hue"
	case channelSaturation:
		return "saturation"
	case channelLightness:
		return "lightness"
	case channelAlpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// Model composes four independent slider engines, one per HSLA channel.
// Each engine keeps its own interaction contract; the picker only reads
// their committed values to derive the preview color. Color conversion
// happens entirely on this side of the engine boundary.
type Model struct {
	engines  [channelCount]*slider.Engine
	views    [channelCount]*components.Slider
	active   channel
	quitting bool
	log      *logger.Logger
}

// New builds the picker with its four channel engines.
func New(log *logger.Logger) (Model, error) {
	m := Model{log: log.WithComponent("tui.colorpicker")}

	configs := [channelCount]slider.Config{
		channelHue:        {Min: 0, Max: 360, Step: 1, DefaultValue: []float64{180}},
		channelSaturation: {Min: 0, Max: 100, Step: 1, DefaultValue: []float64{60}},
		channelLightness:  {Min: 0, Max: 100, Step: 1, DefaultValue: []float64{50}},
		channelAlpha:      {Min: 0, Max: 100, Step: 1, DefaultValue: []float64{100}},
	}

	for ch := channelHue; ch < channelCount; ch++ {
		eng, err := slider.New(configs[ch])
		if err != nil {
			return Model{}, err
		}
		m.engines[ch] = eng
		m.views[ch] = components.NewSlider(eng).WithLabel(ch.String()).WithWidth(32)
	}

	return m, nil
}

// Init focuses the hue channel.
func (m Model) Init() tea.Cmd {
	m.engines[channelHue].Focus(0)
	return nil
}

// Close tears down every channel engine.
func (m Model) Close() {
	for _, eng := range m.engines {
		eng.Close()
	}
}

// value returns a channel's single committed value.
func (m Model) value(ch channel) float64 {
	return m.engines[ch].CurrentValues()[0]
}

// color derives the preview color from the channel values.
func (m Model) color() colorful.Color {
	return colorful.Hsl(m.value(channelHue), m.value(channelSaturation)/100, m.value(channelLightness)/100)
}
