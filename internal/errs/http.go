package errs

import "strings"

// FieldError points at one invalid input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type ActionType string

const (
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional hint telling the client what to do next.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is both an error and the JSON body written for it.
//
// Code is machine-readable (e.g. "INVALID_PAYLOAD"). Override marks
// messages that were written for the client and may be shown as is.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	clone := *e
	clone.Message = message
	return &clone
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
