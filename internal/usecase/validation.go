package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
)

// Validator checks tagged input structs and reports per-field messages.
type Validator struct {
	validate *validator.Validate
}

// NewValidator registers shop specific rules on top of the validator defaults.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Struct validates s. It returns *errors.ValidationError on rejected input.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	return &domainErrors.ValidationError{Fields: FormatValidationError(fieldErrs)}
}

// IsPhone reports whether phone consists of exactly ten ASCII digits.
func IsPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// FormatValidationError converts validator failures into field messages
// keyed by the lower camel case path of the field.
func FormatValidationError(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := fieldPath(fe.Namespace())
		name := fieldName(fe.Field())

		switch fe.Tag() {
		case "required":
			fields[field] = fmt.Sprintf("%s is required", name)
		case "email":
			fields[field] = fmt.Sprintf("%s must be a valid email address", name)
		case "phone10":
			fields[field] = fmt.Sprintf("%s must be exactly 10 digits", name)
		case "min":
			if fe.Kind() == reflect.Slice {
				fields[field] = fmt.Sprintf("%s must contain at least %s entry", name, fe.Param())
			} else {
				fields[field] = fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
			}
		case "gt":
			fields[field] = fmt.Sprintf("%s must be greater than %s", name, fe.Param())
		case "gte":
			fields[field] = fmt.Sprintf("%s must be greater than or equal to %s", name, fe.Param())
		default:
			fields[field] = fmt.Sprintf("%s is invalid", name)
		}
	}
	return fields
}

// fieldPath drops the root struct name: "CheckoutRequest.Items[0].Name" -> "items[0].name".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = fieldName(p)
	}
	return strings.Join(parts, ".")
}

func fieldName(name string) string {
	runes := []rune(name)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	// keep the last capital of a leading acronym: "IDValue" -> "idValue"
	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
