package slider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	uierrors "github.com/its-just-ui/justui-go/pkg/errors"
)

func TestNewValueSpaceRejectsBadConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		min  float64
		max  float64
		step float64
	}{
		{"zero step", 0, 100, 0},
		{"negative step", 0, 100, -1},
		{"max below min", 10, 0, 1},
		{"nan bound", math.NaN(), 100, 1},
		{"infinite bound", 0, math.Inf(1), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewValueSpace(tc.min, tc.max, tc.step)
			require.Error(t, err)

			var configErr *uierrors.ConfigError
			require.ErrorAs(t, err, &configErr)
		})
	}
}

func TestNewValueSpaceAllowsDegenerateInterval(t *testing.T) {
	t.Parallel()

	space, err := NewValueSpace(5, 5, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, space.ToPercentage(5))
	require.Equal(t, 5.0, space.FromPercentage(50))
}

func TestClampRestrictsToBounds(t *testing.T) {
	t.Parallel()

	space, err := NewValueSpace(0, 100, 10)
	require.NoError(t, err)

	require.Equal(t, 0.0, space.Clamp(-50))
	require.Equal(t, 100.0, space.Clamp(250))
	require.Equal(t, 42.0, space.Clamp(42))
}

func TestQuantizeIsIdempotent(t *testing.T) {
	t.Parallel()

	space, err := NewValueSpace(-10, 10, 0.25)
	require.NoError(t, err)

	for v := -15.0; v <= 15.0; v += 0.173 {
		once := space.Quantize(v)
		require.Equal(t, once, space.Quantize(once), "v=%v", v)
	}
}

func TestQuantizeNeverExceedsOffGridMax(t *testing.T) {
	t.Parallel()

	// max is not on the step grid; rounding up must not escape it.
	space, err := NewValueSpace(0, 101, 3)
	require.NoError(t, err)

	require.LessOrEqual(t, space.Quantize(101), 101.0)
	require.LessOrEqual(t, space.Quantize(100.9), 101.0)
}

func TestToPercentageIsMonotonic(t *testing.T) {
	t.Parallel()

	space, err := NewValueSpace(0, 100, 7)
	require.NoError(t, err)

	prev := math.Inf(-1)
	for v := -20.0; v <= 120.0; v += 0.5 {
		pct := space.ToPercentage(v)
		require.GreaterOrEqual(t, pct, prev, "v=%v", v)
		require.GreaterOrEqual(t, pct, 0.0)
		require.LessOrEqual(t, pct, 100.0)
		prev = pct
	}
}

func TestPercentageRoundTripWithinOneStep(t *testing.T) {
	t.Parallel()

	space, err := NewValueSpace(0, 100, 3)
	require.NoError(t, err)

	for v := 0.0; v <= 100.0; v += 0.37 {
		got := space.FromPercentage(space.ToPercentage(v))
		require.InDelta(t, space.Quantize(v), got, space.Step(), "v=%v", v)
	}
}

func TestFromPercentageClampsInput(t *testing.T) {
	t.Parallel()

	space, err := NewValueSpace(0, 100, 10)
	require.NoError(t, err)

	require.Equal(t, 0.0, space.FromPercentage(-30))
	require.Equal(t, 100.0, space.FromPercentage(170))
	require.Equal(t, 50.0, space.FromPercentage(50))
}
