package scene

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/ui"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := colors.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("layout", func(fl validator.FieldLevel) bool {
			_, err := ui.ParseLayoutMode(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidationError names the offending field with a yaml-ish path.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks field rules and cross-field constraints.
func Validate(s *Scene) error {
	if s == nil {
		return &ValidationError{Field: "scene", Message: "scene is nil"}
	}
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[int]int, len(s.Groups))
	for i, g := range s.Groups {
		if j, dup := seen[g.Key]; dup {
			return &ValidationError{
				Field:   fmt.Sprintf("groups[%d].key", i),
				Message: fmt.Sprintf("group %d already declared at groups[%d]", g.Key, j),
			}
		}
		seen[g.Key] = i
	}

	families := make(map[string]struct{}, len(s.Fonts))
	for i, f := range s.Fonts {
		k := strings.ToLower(f.Family)
		if _, dup := families[k]; dup {
			return &ValidationError{
				Field:   fmt.Sprintf("fonts[%d].family", i),
				Message: fmt.Sprintf("duplicate font family %q", f.Family),
			}
		}
		families[k] = struct{}{}
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
		return &ValidationError{Field: field, Message: msg, Err: err}
	}
	return &ValidationError{Field: "scene", Message: err.Error(), Err: err}
}

// yamlishFieldName turns "Scene.Buttons[2].FontColor" into "buttons[2].fontcolor".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
