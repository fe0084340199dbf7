package restaurant

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)

// Validator enforces field-level rules on restaurant records. It returns the
// full list of violations and leaves reporting to the caller.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds a Validator with the restaurant-specific rules registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("cuisine", oneOf(Cuisines))
	_ = v.RegisterValidation("pricerange", oneOf(PriceRanges))
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("website", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
	})
	return &Validator{v: v}
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, a := range allowed {
			if s == a {
				return true
			}
		}
		return false
	}
}

// Validate returns every violated rule of r, or nil when r is valid.
func (val *Validator) Validate(r *Restaurant) []Violation {
	err := val.v.Struct(r)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return []Violation{{Field: "", Message: err.Error()}}
	}
	out := make([]Violation, 0, len(fes))
	for _, fe := range fes {
		field := fieldPath(fe)
		out = append(out, Violation{Field: field, Message: describe(field, fe)})
	}
	return out
}

// fieldPath drops the root struct name from the namespace: "Restaurant.address.city" -> "address.city".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "cuisine":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, strings.Join(Cuisines, ", "), fe.Value())
	case "pricerange":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, strings.Join(PriceRanges, ", "), fe.Value())
	case "phone":
		return field + " must match the format (123) 456-7890"
	case "email":
		return field + " must be a valid email address"
	case "website":
		return field + " must start with http:// or https://"
	}
	return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
}
