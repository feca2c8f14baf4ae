// Package validation binds request payloads and turns validation failures
// into 400 responses with per-field errors.
package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/sixfigure-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by every request payload. Validate usually
// runs validator.Struct; it may also return CustomValidationErrors or a
// ready-made *errs.HTTPError.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a rule that struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindErrorCoder lets a payload choose the error code reported when the
// body cannot be bound. Payloads without it get BAD_REQUEST.
type BindErrorCoder interface {
	BindErrorCode() string
}

// BindAndValidate binds the request into payload, which must be a pointer,
// then validates it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		var code *string
		if coder, ok := payload.(BindErrorCoder); ok {
			custom := coder.BindErrorCode()
			code = &custom
		}
		return errs.NewBadRequestError(bindErrorMessage(err), false, code, nil, nil)
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindErrorMessage pulls the client-facing message out of an Echo bind error.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
		return http.StatusText(echoErr.Code)
	}
	return err.Error()
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		fieldErrors := make([]errs.FieldError, 0, len(custom))
		for _, e := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: e.Field, Error: e.Message})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), []errs.FieldError{}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: strings.ToLower(fe.Field()),
			Error: fieldMessage(fe),
		})
	}

	return "Validation failed", fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Type().Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	case "dive":
		return "some items are invalid"
	}

	field := strings.ToLower(fe.Field())
	if fe.Param() != "" {
		return fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: %s", field, fe.Tag())
}
