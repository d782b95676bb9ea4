package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	uierrors "github.com/its-just-ui/justui-go/pkg/errors"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sliders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidPresetFile(t *testing.T) {
	t.Parallel()

	path := writePreset(t, `
version: "1"
sliders:
  - id: volume
    label: Volume
    min: 0
    max: 100
    step: 5
    default: [50]
    marks:
      - value: 0
        label: mute
      - value: 100
        label: max
  - id: price
    min: 0
    max: 500
    step: 10
    range: true
    default: [100, 400]
`)

	file, err := Load(path)
	require.NoError(t, err)
	require.Len(t, file.Sliders, 2)
	require.Equal(t, "volume", file.Sliders[0].ID)
	require.Len(t, file.Sliders[0].Marks, 2)
	require.True(t, file.Sliders[1].Range)
}

func TestLoadMissingFileReturnsParseError(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *uierrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadMalformedYAMLIncludesLine(t *testing.T) {
	t.Parallel()

	path := writePreset(t, "sliders:\n  - id: a\n   bad_indent: true\n")

	_, err := Load(path)

	var parseErr *uierrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Positive(t, parseErr.Line)
}

func TestLoadRejectsInvalidStep(t *testing.T) {
	t.Parallel()

	path := writePreset(t, `
sliders:
  - id: broken
    min: 0
    max: 100
    step: 0
`)

	_, err := Load(path)

	var validationErr *uierrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "gt")
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	file := &File{Sliders: []Preset{
		{ID: "dup", Min: 0, Max: 10, Step: 1},
		{ID: "dup", Min: 0, Max: 10, Step: 1},
	}}

	err := Validate(file)
	var validationErr *uierrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "sliders[1].id")
}

func TestValidateRejectsDefaultOutsideRange(t *testing.T) {
	t.Parallel()

	file := &File{Sliders: []Preset{
		{ID: "oops", Min: 0, Max: 10, Step: 1, Default: []float64{50}},
	}}

	err := Validate(file)
	var validationErr *uierrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateRejectsBadArity(t *testing.T) {
	t.Parallel()

	file := &File{Sliders: []Preset{
		{ID: "r", Min: 0, Max: 10, Step: 1, Range: true, Default: []float64{5}},
	}}
	require.Error(t, Validate(file))

	file = &File{Sliders: []Preset{
		{ID: "s", Min: 0, Max: 10, Step: 1, Default: []float64{1, 2}},
	}}
	require.Error(t, Validate(file))
}

func TestEngineConfigConversion(t *testing.T) {
	t.Parallel()

	preset := Preset{
		ID: "volume", Min: 0, Max: 100, Step: 5,
		Default: []float64{50},
		Marks:   []Mark{{Value: 0, Label: "mute"}},
	}

	cfg := preset.EngineConfig()
	require.Equal(t, 0.0, cfg.Min)
	require.Equal(t, 100.0, cfg.Max)
	require.Equal(t, 5.0, cfg.Step)
	require.Equal(t, []float64{50}, cfg.DefaultValue)
	require.Len(t, cfg.Marks, 1)
	require.Equal(t, "mute", cfg.Marks[0].Label)
}
