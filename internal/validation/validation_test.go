package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/sixfigure-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titleRequest struct {
	Title string `json:"title" validate:"required,min=3"`
}

func (r *titleRequest) Validate() error {
	return validator.New().Struct(r)
}

type codedRequest struct {
	titleRequest
}

func (r *codedRequest) BindErrorCode() string {
	return "INVALID_PAYLOAD"
}

type customRequest struct {
	Slug string `json:"slug"`
}

func (r *customRequest) Validate() error {
	if strings.Contains(r.Slug, " ") {
		return CustomValidationErrors{{Field: "slug", Message: "must not contain spaces"}}
	}
	return nil
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_Valid(t *testing.T) {
	req := &titleRequest{}
	require.NoError(t, BindAndValidate(newContext(`{"title":"Hello"}`), req))
	assert.Equal(t, "Hello", req.Title)
}

func TestBindAndValidate_TagErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{}`), &titleRequest{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "title", Error: "is required"}, httpErr.Errors[0])

	err = BindAndValidate(newContext(`{"title":"Hi"}`), &titleRequest{})
	httpErr = requireHTTPError(t, err)
	assert.Equal(t, "must be at least 3 characters", httpErr.Errors[0].Error)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{"slug":"a b"}`), &customRequest{})

	httpErr := requireHTTPError(t, err)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "slug", httpErr.Errors[0].Field)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	err := BindAndValidate(newContext(`{"title":`), &titleRequest{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_BindErrorCoder(t *testing.T) {
	err := BindAndValidate(newContext(`not json`), &codedRequest{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, "INVALID_PAYLOAD", httpErr.Code)
}

func TestBindAndValidate_HTTPErrorPassThrough(t *testing.T) {
	err := BindAndValidate(newContext(`{}`), &httpErrRequest{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, "CUSTOM", httpErr.Code)
}

type httpErrRequest struct{}

func (r *httpErrRequest) Validate() error {
	code := "CUSTOM"
	return errs.NewBadRequestError("nope", true, &code, nil, nil)
}
