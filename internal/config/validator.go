package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	pperrors "github.com/alexisbeaulieu97/proppanel/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	cssClassPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)
)

// validatorInstance configures and returns the shared validator used across
// the config package. Field names in errors follow the yaml tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_class", func(fl validator.FieldLevel) bool {
			return cssClassPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("control_type", func(fl validator.FieldLevel) bool {
			return isBuiltinControl(fl.Field().String())
		})

		_ = v.RegisterValidation("control_group", func(fl validator.FieldLevel) bool {
			return control.Group(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator for use outside the package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

func isBuiltinControl(name string) bool {
	defs, err := control.Builtin()
	if err != nil {
		return false
	}
	for _, def := range defs {
		if string(def.Type) == name {
			return true
		}
	}
	return false
}

// ValidateConfig performs structural and cross-field validation.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return pperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seenClasses := make(map[string]struct{}, len(cfg.ClassMappings))
	for i, m := range cfg.ClassMappings {
		if _, exists := seenClasses[m.Class]; exists {
			return pperrors.NewValidationError(fieldFor("class_mappings", i, "class"), fmt.Sprintf("duplicate class %q", m.Class), nil)
		}
		seenClasses[m.Class] = struct{}{}
	}

	seenTypes := make(map[string]struct{}, len(cfg.ControlOverrides))
	for i, o := range cfg.ControlOverrides {
		if _, exists := seenTypes[o.Type]; exists {
			return pperrors.NewValidationError(fieldFor("control_overrides", i, "type"), fmt.Sprintf("duplicate control override %q", o.Type), nil)
		}
		seenTypes[o.Type] = struct{}{}
	}

	return nil
}

// convertValidationError turns the first validator failure into a
// ValidationError with a yaml-ish field path.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pperrors.NewValidationError(field, msg, err)
	}

	return pperrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	_, field, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Namespace()
	}
	return field
}

func fieldFor(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}
