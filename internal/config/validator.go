package config

import (
	stdErrors "errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	uierrors "github.com/its-just-ui/justui-go/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	presetIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("preset_id", func(fl validator.FieldLevel) bool {
			return presetIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a loaded preset file: struct tags first, then the semantic
// rules tags cannot express (value arity per mode, defaults inside range,
// unique IDs).
func Validate(file *File) error {
	if err := validatorInstance().Struct(file); err != nil {
		var fieldErrs validator.ValidationErrors
		if stdErrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return uierrors.NewValidationError(fe.Namespace(), fmt.Sprintf("failed %q constraint", fe.Tag()), err)
		}
		return uierrors.NewValidationError("", err.Error(), err)
	}

	seen := make(map[string]struct{}, len(file.Sliders))
	for i, preset := range file.Sliders {
		field := fmt.Sprintf("sliders[%d]", i)

		if _, dup := seen[preset.ID]; dup {
			return uierrors.NewValidationError(field+".id", fmt.Sprintf("duplicate id %q", preset.ID), nil)
		}
		seen[preset.ID] = struct{}{}

		if preset.Range && len(preset.Default) > 0 && len(preset.Default) < 2 {
			return uierrors.NewValidationError(field+".default", "range slider needs at least two default values", nil)
		}
		if !preset.Range && len(preset.Default) > 1 {
			return uierrors.NewValidationError(field+".default", "single slider takes exactly one default value", nil)
		}

		for _, v := range preset.Default {
			if v < preset.Min || v > preset.Max {
				return uierrors.NewValidationError(field+".default", fmt.Sprintf("value %v outside [%v, %v]", v, preset.Min, preset.Max), nil)
			}
		}
	}

	return nil
}
