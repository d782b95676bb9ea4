package config

import (
	"github.com/its-just-ui/justui-go/pkg/slider"
)

// Preset describes one slider declared in a preset file. It maps one to one
// onto an engine Config; the demos build their sliders from these.
type Preset struct {
	ID       string    `yaml:"id" validate:"required,preset_id"`
	Label    string    `yaml:"label"`
	Min      float64   `yaml:"min"`
	Max      float64   `yaml:"max" validate:"gtefield=Min"`
	Step     float64   `yaml:"step" validate:"gt=0"`
	Range    bool      `yaml:"range"`
	Default  []float64 `yaml:"default"`
	Disabled bool      `yaml:"disabled"`
	ReadOnly bool      `yaml:"read_only"`
	Marks    []Mark    `yaml:"marks"`
}

// Mark is the YAML form of a track mark.
type Mark struct {
	Value float64 `yaml:"value"`
	Label string  `yaml:"label"`
}

// File is the root of a preset document.
type File struct {
	Version string   `yaml:"version"`
	Sliders []Preset `yaml:"sliders" validate:"required,min=1,dive"`
}

// EngineConfig converts the preset into an engine configuration. Event
// callbacks and listener binding stay with the host; presets only carry
// declarative state.
func (p Preset) EngineConfig() slider.Config {
	marks := make([]slider.Mark, len(p.Marks))
	for i, m := range p.Marks {
		marks[i] = slider.Mark{Value: m.Value, Label: m.Label}
	}
	return slider.Config{
		Min:          p.Min,
		Max:          p.Max,
		Step:         p.Step,
		Range:        p.Range,
		DefaultValue: p.Default,
		Disabled:     p.Disabled,
		ReadOnly:     p.ReadOnly,
		Marks:        marks,
	}
}
