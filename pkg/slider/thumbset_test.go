package slider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewThumbSetQuantizesAndOrders(t *testing.T) {
	t.Parallel()

	space := mustSpace(t, 0, 100, 10)
	thumbs := NewThumbSet(space, []float64{43, 12})

	// 43 snaps to 40; the misordered 12 is pulled up to its predecessor.
	require.Equal(t, []float64{40, 40}, thumbs.Values())
}

func TestSetClampsToSpaceBounds(t *testing.T) {
	t.Parallel()

	space := mustSpace(t, 0, 100, 10)
	thumbs := NewThumbSet(space, []float64{50})

	require.Equal(t, 0.0, thumbs.Set(0, -30))
	require.Equal(t, 100.0, thumbs.Set(0, 230))
}

func TestSetPreservesNonCrossingInvariant(t *testing.T) {
	t.Parallel()

	space := mustSpace(t, 0, 100, 1)
	thumbs := NewThumbSet(space, []float64{20, 50, 80})

	// Middle thumb cannot cross either neighbor.
	require.Equal(t, 80.0, thumbs.Set(1, 95))
	require.Equal(t, 20.0, thumbs.Set(1, 5))

	// Ends clamp against their single neighbor and the space bounds.
	require.Equal(t, 20.0, thumbs.Set(0, 45))
	require.Equal(t, 100.0, thumbs.Set(2, 140))

	values := thumbs.Values()
	for i := 1; i < len(values); i++ {
		require.LessOrEqual(t, values[i-1], values[i])
	}
}

func TestSetAllowsCoincidentThumbs(t *testing.T) {
	t.Parallel()

	space := mustSpace(t, 0, 100, 1)
	thumbs := NewThumbSet(space, []float64{20, 80})

	require.Equal(t, 80.0, thumbs.Set(0, 80))
	require.Equal(t, []float64{80, 80}, thumbs.Values())
}

func TestResolveDoesNotMutate(t *testing.T) {
	t.Parallel()

	space := mustSpace(t, 0, 100, 1)
	thumbs := NewThumbSet(space, []float64{20, 80})

	require.Equal(t, 80.0, thumbs.Resolve(0, 95))
	require.Equal(t, []float64{20, 80}, thumbs.Values())
}

func TestNearestBreaksTiesToLowestIndex(t *testing.T) {
	t.Parallel()

	space := mustSpace(t, 0, 100, 1)
	thumbs := NewThumbSet(space, []float64{20, 80})

	// Both thumbs are distance 30 from 50.
	require.Equal(t, 0, thumbs.Nearest(50))
	require.Equal(t, 1, thumbs.Nearest(70))
	require.Equal(t, 0, thumbs.Nearest(10))
}

func TestGetExposesIndexAndValue(t *testing.T) {
	t.Parallel()

	space := mustSpace(t, 0, 100, 5)
	thumbs := NewThumbSet(space, []float64{25, 75})

	thumb := thumbs.Get(1)
	require.Equal(t, 1, thumb.Index)
	require.Equal(t, 75.0, thumb.Value)
	require.True(t, thumbs.IsRange())
	require.Equal(t, 2, thumbs.Len())
}
