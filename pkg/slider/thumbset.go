package slider

import (
	"math"
)

// Thumb is a single draggable value handle.
type Thumb struct {
	Index int
	Value float64
}

// ThumbSet is the ordered collection of thumbs on one track. A set of length
// one is a single slider; two or more thumbs form a range slider. In range
// mode adjacent thumbs may coincide but never cross: values[i] <= values[i+1]
// holds after every committed update.
//
// The set is mutated only by the Controller (or Engine) that owns it.
type ThumbSet struct {
	space  ValueSpace
	values []float64
}

// NewThumbSet creates a set from the initial values. Each value is clamped
// and quantized, and ordering is enforced left to right so a misordered
// initial slice is corrected rather than rejected.
func NewThumbSet(space ValueSpace, initial []float64) *ThumbSet {
	values := make([]float64, len(initial))
	for i, v := range initial {
		q := space.Quantize(v)
		if i > 0 && q < values[i-1] {
			q = values[i-1]
		}
		values[i] = q
	}
	return &ThumbSet{space: space, values: values}
}

// Len returns the number of thumbs.
func (t *ThumbSet) Len() int {
	return len(t.values)
}

// IsRange reports whether the set has more than one thumb.
func (t *ThumbSet) IsRange() bool {
	return len(t.values) > 1
}

// Get returns the thumb at index i.
func (t *ThumbSet) Get(i int) Thumb {
	return Thumb{Index: i, Value: t.values[i]}
}

// Value returns the raw value of thumb i.
func (t *ThumbSet) Value(i int) float64 {
	return t.values[i]
}

// Values returns a copy of all thumb values in order.
func (t *ThumbSet) Values() []float64 {
	out := make([]float64, len(t.values))
	copy(out, t.values)
	return out
}

// Resolve computes the value thumb i would take if set to candidate v,
// without mutating the set. The candidate is first clamped to the window
// formed by the neighboring thumbs (or the space bounds at the sequence
// ends), then quantized. Because neighbor values sit on the step grid, the
// quantized result cannot escape the window, preserving the non-crossing
// invariant.
func (t *ThumbSet) Resolve(i int, v float64) float64 {
	lo := t.space.Min()
	hi := t.space.Max()
	if i > 0 {
		lo = t.values[i-1]
	}
	if i < len(t.values)-1 {
		hi = t.values[i+1]
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return t.space.Quantize(v)
}

// Set commits candidate v to thumb i, applying the same neighbor clamp and
// quantization as Resolve, and returns the committed value.
func (t *ThumbSet) Set(i int, v float64) float64 {
	committed := t.Resolve(i, v)
	t.values[i] = committed
	return committed
}

// Nearest returns the index of the thumb whose value is closest to v. Ties
// resolve to the lowest index. It decides which thumb a bare track click
// should move in range mode.
func (t *ThumbSet) Nearest(v float64) int {
	best := 0
	bestDist := math.Abs(t.values[0] - v)
	for i := 1; i < len(t.values); i++ {
		d := math.Abs(t.values[i] - v)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// replace overwrites all thumb values from an externally supplied slice,
// re-applying clamp, quantization and ordering. Used by the engine when a
// controlled caller supplies a new value.
func (t *ThumbSet) replace(values []float64) {
	fresh := NewThumbSet(t.space, values)
	t.values = fresh.values
}
