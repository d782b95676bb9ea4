package slider

import (
	"math"

	"github.com/its-just-ui/justui-go/pkg/errors"
)

// ValueSpace is the pure domain model of a slider axis: the closed interval
// [min, max] and the step grid values snap to. It is an immutable value type
// and may be recomputed freely whenever configuration changes.
type ValueSpace struct {
	min  float64
	max  float64
	step float64
}

// NewValueSpace creates a ValueSpace. It fails with a ConfigError when
// step <= 0, max < min, or any bound is not a finite number.
func NewValueSpace(min, max, step float64) (ValueSpace, error) {
	if !isFinite(min) || !isFinite(max) || !isFinite(step) {
		return ValueSpace{}, errors.NewConfigError("", "min, max and step must be finite numbers", nil)
	}
	if step <= 0 {
		return ValueSpace{}, errors.NewConfigError("step", "must be greater than zero", nil)
	}
	if max < min {
		return ValueSpace{}, errors.NewConfigError("max", "must be greater than or equal to min", nil)
	}
	return ValueSpace{min: min, max: max, step: step}, nil
}

// Min returns the lower bound of the space.
func (s ValueSpace) Min() float64 { return s.min }

// Max returns the upper bound of the space.
func (s ValueSpace) Max() float64 { return s.max }

// Step returns the quantization step.
func (s ValueSpace) Step() float64 { return s.step }

// Clamp restricts v to [min, max].
func (s ValueSpace) Clamp(v float64) float64 {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}

// Quantize snaps v to the nearest step offset from min. The result is
// clamped back into [min, max] so a max that is not itself on the step grid
// can never be exceeded by rounding. Quantize is idempotent.
func (s ValueSpace) Quantize(v float64) float64 {
	snapped := s.min + math.Round((s.Clamp(v)-s.min)/s.step)*s.step
	return s.Clamp(snapped)
}

// ToPercentage maps v to its position on the track as a percentage in
// [0, 100]. A degenerate space with min == max maps everything to 0.
func (s ValueSpace) ToPercentage(v float64) float64 {
	span := s.max - s.min
	if span == 0 {
		return 0
	}
	return 100 * (s.Clamp(v) - s.min) / span
}

// FromPercentage maps a track percentage back to a quantized value. The
// percentage is clamped to [0, 100] before conversion.
func (s ValueSpace) FromPercentage(p float64) float64 {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return s.Quantize(s.min + (p/100)*(s.max-s.min))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
