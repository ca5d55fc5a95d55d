package showcase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator. Field errors are reported
// under the field's form name so they can be matched back to inputs.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// Submission is what the showcase form posts.
type Submission struct {
	Name    string `form:"name" validate:"required,min=2"`
	Email   string `form:"email" validate:"required,email"`
	Country string `form:"country" validate:"required,len=2"`
	Plan    string `form:"plan" validate:"required,oneof=free pro team"`
	Company string `form:"company" validate:"required"`
}

// FieldErrors maps form field names to a message for the user.
type FieldErrors map[string]string

// Validate checks s and returns the message to show under each failing field.
// A nil map means the submission is valid.
func (s Submission) Validate() (FieldErrors, error) {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil, nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil, err
	}

	out := make(FieldErrors, len(ves))
	for _, fe := range ves {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "email":
		return "Enter a valid email address"
	case "oneof", "len":
		return "Choose one of the listed options"
	default:
		return fmt.Sprintf("Failed the %q check", fe.Tag())
	}
}
