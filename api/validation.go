package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all requests; validator.Validate is safe for
// concurrent use.
var validate = newValidator()

// newValidator returns a validator that reports JSON field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func fieldErrors(verrs validator.ValidationErrors) []FieldErrorDetails {
	out := make([]FieldErrorDetails, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldErrorDetails{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// fieldPath drops the root struct name: "CalculationRequest.period.month"
// becomes "period.month".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
