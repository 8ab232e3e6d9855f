package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"riftlens/internal/domain"

	"github.com/go-playground/validator/v10"
)

// ValidationError is returned for malformed path or query parameters and maps to 400.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, ", ")
}

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseRegion(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("matchid", func(fl validator.FieldLevel) bool {
		prefix, rest, found := strings.Cut(fl.Field().String(), "_")
		return found && prefix != "" && rest != ""
	})

	return v
}

func (s *Server) validate(req any) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{Fields: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, formatFieldError(fe))
	}
	return out
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "region":
		return fmt.Sprintf("%s must be a known region", field)
	case "matchid":
		return fmt.Sprintf("%s must look like PLATFORM_ID", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func invalidParam(name, reason string) *ValidationError {
	return &ValidationError{Fields: []string{name + " " + reason}}
}
