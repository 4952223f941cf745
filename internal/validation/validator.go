// Package validation holds the shared struct validator used for
// configuration files and theme mutations.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	onceerrors "github.com/alexisbeaulieu97/onceui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	tokenPattern = regexp.MustCompile(`^-?[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Instance returns the shared validator. Field names in errors follow the
// yaml tags so they match what users write in configuration files.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			switch name {
			case "-":
				return ""
			case "":
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
			return IsToken(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// IsToken reports whether value is a lower-case, hyphen-separated token
// name. A single leading minus is allowed for negative scale steps.
func IsToken(value string) bool {
	return tokenPattern.MatchString(value)
}

// Struct validates s and converts the first failure into a ValidationError.
func Struct(s interface{}) error {
	return Convert(Instance().Struct(s))
}

// Convert turns validator errors into a ValidationError naming the first
// offending field. Other errors are wrapped as-is.
func Convert(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := FieldPath(fe)
		return onceerrors.NewValidationError(field, Message(fe), err)
	}

	return onceerrors.NewValidationError("config", err.Error(), err)
}

// FieldPath renders the namespace of fe as a dotted yaml path, dropping the
// root struct name: "Config.tokens.radius[2]" becomes "tokens.radius[2]".
func FieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

// Message describes a failed tag in words.
func Message(fe validator.FieldError) string {
	field := FieldPath(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "unique":
		return fmt.Sprintf("%s contains duplicate values", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "token":
		return fmt.Sprintf("%s: %q is not a valid token name", field, fmt.Sprint(fe.Value()))
	case "excludes":
		return fmt.Sprintf("%s: %q may not contain %q", field, fmt.Sprint(fe.Value()), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	}
}
