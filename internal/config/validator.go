package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	exterrors "github.com/alexisbeaulieu97/extdeck/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		validateInst = v
	})

	return validateInst
}

// Validate checks field constraints on the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return exterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if strings.TrimSpace(cfg.Preferences.Path) == "" {
		return exterrors.NewValidationError("preferences.path", "preference store path is required", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s', got %q", field, ve.Tag(), fmt.Sprint(ve.Value()))
		if ve.Param() != "" {
			msg += fmt.Sprintf(" (allowed: %s)", ve.Param())
		}
		return exterrors.NewValidationError(field, msg, err)
	}

	return exterrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.preferences.backend" into "preferences.backend".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
