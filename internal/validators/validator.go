package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates structs by their `validate` tags.
type StructValidator struct {
	v *validator.Validate
}

// NewStructValidator creates a validator that reports fields by their JSON
// tag names.
func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "":
			return fld.Name
		case "-":
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation("maxbytes", maxBytes)

	return &StructValidator{v: v}
}

// maxBytes checks the UTF-8 length of a string, unlike "max" which counts
// runes. bcrypt rejects passwords longer than 72 bytes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate validates obj. When fields are given only those struct fields
// are checked.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = s.v.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.v.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fieldErrors[e.Field()] = friendlyMessage(e)
	}

	return &ValidationError{Fields: fieldErrors}
}

func friendlyMessage(e validator.FieldError) string {
	isList := e.Kind() == reflect.Slice || e.Kind() == reflect.Array

	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if isList {
			return fmt.Sprintf("must contain at least %s item(s)", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		if isList {
			return fmt.Sprintf("must contain at most %s item(s)", e.Param())
		}
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "maxbytes":
		return fmt.Sprintf("must not exceed %s bytes", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}
