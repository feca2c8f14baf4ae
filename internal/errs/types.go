package errs

import (
	"net/http"
)

// Machine-readable codes of the webhook endpoint.
const (
	CodeInvalidPayload   = "INVALID_PAYLOAD"
	CodeStoreWriteFailed = "STORE_WRITE_FAILED"
	CodeUnexpectedError  = "UNEXPECTED_ERROR"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError builds a 400. code defaults to "BAD_REQUEST".
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError builds a 404. code defaults to "NOT_FOUND".
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewInternalServerError builds a generic 500 that reveals nothing about
// the cause.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// NewInvalidPayloadError builds the 400 for a malformed webhook envelope.
func NewInvalidPayloadError(message string) *HTTPError {
	code := CodeInvalidPayload
	return NewBadRequestError(message, true, &code, nil, nil)
}

// NewStoreWriteFailedError builds the 500 for a write the store did not
// confirm.
func NewStoreWriteFailedError(message string) *HTTPError {
	return &HTTPError{
		Code:    CodeStoreWriteFailed,
		Message: message,
		Status:  http.StatusInternalServerError,
	}
}

// NewUnexpectedError builds a 500 whose message is "prefix: err".
func NewUnexpectedError(prefix string, err error) *HTTPError {
	message := prefix
	if err != nil {
		message = prefix + ": " + err.Error()
	}

	return &HTTPError{
		Code:    CodeUnexpectedError,
		Message: message,
		Status:  http.StatusInternalServerError,
	}
}
