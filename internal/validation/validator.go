package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// RegisterCSSValidations adds the css_color and css_size tags to v.
func RegisterCSSValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
		return IsColor(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("css_size", func(fl validator.FieldLevel) bool {
		return IsSizeValue(fl.Field().String())
	})
}

func instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = RegisterCSSValidations(v)
		validateInst = v
	})
	return validateInst
}

// checkFor returns the value check applied to properties of t, or nil when
// the control type carries no validation.
func checkFor(t control.Type) func(string) error {
	switch t {
	case control.ColorPicker:
		return CheckColor
	case control.Size, control.BoxModel:
		return CheckSize
	default:
		return nil
	}
}

// RunChecks validates the flat property map values against the properties
// declared by each definition. Values are looked up by camelCase name first,
// then by kebab-case name; missing and empty values are skipped. The returned
// results list only checked properties, in definition order.
func RunChecks(defs []control.Definition, values map[string]string) []Result {
	var results []Result

	for _, def := range defs {
		check := checkFor(def.Type)
		if check == nil {
			continue
		}

		for _, prop := range def.CSSProperties {
			value, ok := values[cssprop.ToCamel(prop)]
			if !ok {
				value = values[prop]
			}
			if value == "" {
				continue
			}

			result := Result{Control: def.Type, Property: prop, Value: value, Passed: true, Message: "passed"}
			if err := check(value); err != nil {
				result.Passed = false
				result.Message = err.Error()
				result.Error = err
			}
			results = append(results, result)
		}
	}

	return results
}

// Failures groups the failed results' messages by control type.
func Failures(results []Result) map[control.Type][]string {
	out := make(map[control.Type][]string)
	for _, r := range results {
		if !r.Passed {
			out[r.Control] = append(out[r.Control], r.Message)
		}
	}
	return out
}
