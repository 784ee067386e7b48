package errs

import (
	"fmt"
	"net/http"
)

// Request & input-validation errors. Handlers collect field-level problems and
// return them together so a form can highlight every offending input at once.

// NewValidationError builds a 400 carrying one message per offending field.
func NewValidationError(fields ...FieldError) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Fields:     fields,
	}
}

// RequiredField describes a missing required field.
func RequiredField(name string) FieldError {
	return FieldError{
		Field:   name,
		Message: fmt.Sprintf("%s is required", name),
	}
}

// InvalidField describes a present but unacceptable field value.
func InvalidField(name, reason string) FieldError {
	return FieldError{
		Field:   name,
		Message: reason,
	}
}

// NewMalformedPayloadError covers bodies that cannot be decoded at all.
func NewMalformedPayloadError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrBadRequest,
		Details:    "request body could not be decoded",
		Cause:      cause,
	}
}
