package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of s and converts failures to field errors.
func validateStruct(s any) error {
	return toValidationError(validate.Struct(s), nil)
}

// validateFields is validateStruct restricted to the given JSON field names.
func validateFields(s any, fields []string) error {
	keep := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		keep[f] = struct{}{}
	}
	return toValidationError(validate.Struct(s), keep)
}

func toValidationError(err error, keep map[string]struct{}) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", entities.ErrInvalidArgument, err)
	}

	res := entities.NewValidationError()
	for _, fe := range verrs {
		path := fieldPath(fe)
		if keep != nil {
			if _, ok := keep[rootField(path)]; !ok {
				continue
			}
		}
		res.Add(path, fe.Tag(), message(fe))
	}
	return res.OrNil()
}

// fieldPath drops the struct type name from the namespace: "Event.tracks[0].name" -> "tracks[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func rootField(path string) string {
	if i := strings.IndexAny(path, ".["); i >= 0 {
		return path[:i]
	}
	return path
}

func message(fe validator.FieldError) string {
	kind := fe.Kind()
	if kind == reflect.Ptr {
		kind = fe.Type().Elem().Kind()
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "e164":
		return "must be a phone number in E.164 format"
	case "alphanumunicode":
		return "must contain only letters and digits"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "must be greater than " + fe.Param()
	case "min", "max":
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}
		switch kind {
		case reflect.String:
			return fmt.Sprintf("must be %s %s characters", bound, fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("must have %s %s items", bound, fe.Param())
		default:
			return fmt.Sprintf("must be %s %s", bound, fe.Param())
		}
	default:
		return "failed " + fe.Tag() + " rule"
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", entities.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
