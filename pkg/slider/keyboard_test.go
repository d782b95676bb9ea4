package slider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyString(t *testing.T) {
	t.Parallel()

	cases := map[Key]string{
		KeyNone:       "none",
		KeyArrowLeft:  "left",
		KeyArrowRight: "right",
		KeyArrowUp:    "up",
		KeyArrowDown:  "down",
		KeyPageUp:     "pgup",
		KeyPageDown:   "pgdown",
		KeyHome:       "home",
		KeyEnd:        "end",
	}
	for key, want := range cases {
		require.Equal(t, want, key.String())
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "focused", StateFocused.String())
	require.Equal(t, "dragging", StateDragging.String())
}

func TestKeyTargets(t *testing.T) {
	t.Parallel()

	space := mustSpace(t, 0, 100, 5)

	cases := []struct {
		key     Key
		current float64
		want    float64
		handled bool
	}{
		{KeyArrowLeft, 50, 45, true},
		{KeyArrowDown, 50, 45, true},
		{KeyArrowRight, 50, 55, true},
		{KeyArrowUp, 50, 55, true},
		{KeyPageDown, 50, 0, true},
		{KeyPageUp, 50, 100, true},
		{KeyHome, 50, 0, true},
		{KeyEnd, 50, 100, true},
		{KeyNone, 50, 50, false},
	}

	for _, tc := range cases {
		got, handled := tc.key.target(space, tc.current)
		require.Equal(t, tc.handled, handled, "key=%s", tc.key)
		require.Equal(t, tc.want, got, "key=%s", tc.key)
	}
}
