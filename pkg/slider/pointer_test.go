package slider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustSpace(t *testing.T, min, max, step float64) ValueSpace {
	t.Helper()
	space, err := NewValueSpace(min, max, step)
	require.NoError(t, err)
	return space
}

func TestValueAtMapsAlongTrack(t *testing.T) {
	t.Parallel()

	mapper := NewPointerMapper(mustSpace(t, 0, 100, 1))
	track := TrackGeometry{Start: 10, Length: 200}

	require.Equal(t, 0.0, mapper.ValueAt(10, track))
	require.Equal(t, 50.0, mapper.ValueAt(110, track))
	require.Equal(t, 100.0, mapper.ValueAt(210, track))
}

func TestValueAtClampsOutsideTrack(t *testing.T) {
	t.Parallel()

	mapper := NewPointerMapper(mustSpace(t, 0, 100, 1))
	track := TrackGeometry{Start: 0, Length: 100}

	require.Equal(t, 0.0, mapper.ValueAt(-40, track))
	require.Equal(t, 100.0, mapper.ValueAt(500, track))
}

func TestValueAtZeroLengthTrackFallsBackToMin(t *testing.T) {
	t.Parallel()

	mapper := NewPointerMapper(mustSpace(t, 20, 80, 5))
	require.Equal(t, 20.0, mapper.ValueAt(999, TrackGeometry{Start: 0, Length: 0}))
}

func TestValueAtQuantizes(t *testing.T) {
	t.Parallel()

	mapper := NewPointerMapper(mustSpace(t, 0, 100, 10))
	track := TrackGeometry{Start: 0, Length: 100}

	require.Equal(t, 40.0, mapper.ValueAt(43, track))
	require.Equal(t, 50.0, mapper.ValueAt(47, track))
}

func TestTrackGeometryValidity(t *testing.T) {
	t.Parallel()

	require.True(t, TrackGeometry{Start: 0, Length: 0}.IsValid())
	require.True(t, TrackGeometry{Start: -5, Length: 10}.IsValid())
	require.False(t, TrackGeometry{Start: 0, Length: -1}.IsValid())
	require.False(t, TrackGeometry{Start: math.NaN(), Length: 10}.IsValid())
	require.False(t, TrackGeometry{Start: 0, Length: math.Inf(1)}.IsValid())
}
