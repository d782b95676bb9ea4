package slider

import (
	stdErrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/its-just-ui/justui-go/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used for engine configs.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Config describes an engine at construction time. Min, Max and Step define
// the value space; Value or DefaultValue selects controlled or uncontrolled
// operation; everything else is optional.
type Config struct {
	Min  float64
	Max  float64 `validate:"gtefield=Min"`
	Step float64 `validate:"gt=0"`

	// Range selects multi-thumb mode. A range engine needs at least two
	// initial values; a single engine needs exactly one.
	Range bool

	// Value makes the engine controlled: the external value is the sole
	// source of truth and interaction candidates are only reported, never
	// applied. Re-supply updates through SetValue.
	Value []float64

	// DefaultValue seeds an uncontrolled engine. When both Value and
	// DefaultValue are nil the engine starts at Min (single) or
	// [Min, Max] (range).
	DefaultValue []float64

	Disabled bool
	ReadOnly bool

	// Marks are informational track labels; see Mark.
	Marks []Mark

	// MoveThreshold overrides DefaultMoveThreshold when > 0.
	MoveThreshold float64 `validate:"gte=0"`

	// Bind registers host pointer listeners per drag session.
	Bind ListenerBinder

	Callbacks Callbacks
}

// controlled reports whether an external value was supplied.
func (c Config) controlled() bool {
	return c.Value != nil
}

// initialValues resolves the starting thumb values before clamping and
// quantization.
func (c Config) initialValues() []float64 {
	switch {
	case c.Value != nil:
		return c.Value
	case c.DefaultValue != nil:
		return c.DefaultValue
	case c.Range:
		return []float64{c.Min, c.Max}
	default:
		return []float64{c.Min}
	}
}

// validate checks the config, returning a ConfigError on the first problem.
func (c Config) validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if stdErrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.NewConfigError(strings.ToLower(fe.Field()), fmt.Sprintf("failed %q constraint", fe.Tag()), err)
		}
		return errors.NewConfigError("", err.Error(), err)
	}

	initial := c.initialValues()
	if c.Range && len(initial) < 2 {
		return errors.NewConfigError("value", "range mode requires at least two values", nil)
	}
	if !c.Range && len(initial) != 1 {
		return errors.NewConfigError("value", "single mode requires exactly one value", nil)
	}
	return nil
}
