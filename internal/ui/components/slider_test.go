package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/its-just-ui/justui-go/pkg/slider"
)

func newTestEngine(t *testing.T, cfg slider.Config) *slider.Engine {
	t.Helper()
	eng, err := slider.New(cfg)
	require.NoError(t, err)
	t.Cleanup(eng.Close)
	return eng
}

func TestSliderViewContainsThumbAndTrack(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, slider.Config{Min: 0, Max: 100, Step: 10, DefaultValue: []float64{50}})
	view := NewSlider(eng).WithWidth(21).View()

	require.Contains(t, view, "●")
	require.Contains(t, view, "─")
	require.Contains(t, view, "50")
}

func TestSliderViewRendersBothRangeThumbs(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, slider.Config{Min: 0, Max: 100, Step: 1, Range: true, DefaultValue: []float64{20, 80}})
	view := NewSlider(eng).WithWidth(41).WithValueReadout(false).View()

	require.Equal(t, 2, strings.Count(view, "●"))
	require.Contains(t, view, "━")
}

func TestSliderViewRendersMarksAndLabels(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, slider.Config{
		Min: 0, Max: 100, Step: 10,
		DefaultValue: []float64{50},
		Marks:        []slider.Mark{{Value: 0, Label: "lo"}, {Value: 100, Label: "hi"}},
	})
	view := NewSlider(eng).WithWidth(21).View()

	require.Contains(t, view, "lo")
	require.Contains(t, view, "hi")
}

func TestSliderTrackGeometryMatchesWidth(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, slider.Config{Min: 0, Max: 100, Step: 1, DefaultValue: []float64{0}})
	track := NewSlider(eng).WithWidth(41).Track()

	require.Equal(t, 0.0, track.Start)
	require.Equal(t, 40.0, track.Length)
}

func TestSliderLabelAppearsInReadout(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, slider.Config{Min: 0, Max: 100, Step: 5, DefaultValue: []float64{25}})
	view := NewSlider(eng).WithLabel("Volume").View()

	require.Contains(t, view, "Volume")
	require.Contains(t, view, "25")
}

func TestBadgeRendersText(t *testing.T) {
	t.Parallel()

	require.Contains(t, SuccessBadge("ready").View(), "ready")
	require.Equal(t, "ready", NewBadge("ready").Text())
}

func TestAlertRendersTitleAndIcon(t *testing.T) {
	t.Parallel()

	view := NewAlert("step must be positive").
		WithTitle("Invalid preset").
		WithVariant(VariantError).
		View()

	require.Contains(t, view, "Invalid preset")
	require.Contains(t, view, "✗")
	require.Contains(t, view, "step must be positive")
}
