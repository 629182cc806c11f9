package httperrors

import (
	"fmt"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/types"
)

// HTTPError is an echo-compatible error carrying the public wire shape.
type HTTPError struct {
	types.PublicHTTPError
	Internal       error                  `json:"-"`
	AdditionalData map[string]interface{} `json:"-"`
}

// NewHTTPError creates an HTTPError with the given status, public type and
// title.
func NewHTTPError(code int, errorType string, title string) *HTTPError {
	return &HTTPError{
		PublicHTTPError: types.PublicHTTPError{
			Status: swag.Int64(int64(code)),
			Type:   swag.String(errorType),
			Title:  swag.String(title),
		},
	}
}

// NewHTTPErrorWithDetail creates an HTTPError with an additional detail
// string, only surfaced in debug setups.
func NewHTTPErrorWithDetail(code int, errorType string, title string, detail string) *HTTPError {
	e := NewHTTPError(code, errorType, title)
	e.Detail = detail
	return e
}

// NewFromEcho converts a plain echo HTTPError into our public shape.
func NewFromEcho(e *echo.HTTPError) *HTTPError {
	return NewHTTPError(e.Code, types.PublicHTTPErrorTypeGeneric, fmt.Sprintf("%v", e.Message))
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTPError %d (%s): %s", swag.Int64Value(e.Status), swag.StringValue(e.Type), swag.StringValue(e.Title))
}

// HTTPValidationError extends HTTPError with failed validation details.
type HTTPValidationError struct {
	types.PublicHTTPValidationError
	Internal error `json:"-"`
}

// NewHTTPValidationError creates an HTTPValidationError with the given
// status, public type, title and per-field details.
func NewHTTPValidationError(code int, errorType string, title string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		PublicHTTPValidationError: types.PublicHTTPValidationError{
			PublicHTTPError: types.PublicHTTPError{
				Status: swag.Int64(int64(code)),
				Type:   swag.String(errorType),
				Title:  swag.String(title),
			},
			ValidationErrors: validationErrors,
		},
	}
}

func (e *HTTPValidationError) Error() string {
	return fmt.Sprintf("HTTPValidationError %d (%s): %s (%d validation errors)",
		swag.Int64Value(e.Status), swag.StringValue(e.Type), swag.StringValue(e.Title), len(e.ValidationErrors))
}

// HandlerWithConfig returns the global echo error handler, rendering all
// errors in the public error shape. Internal server error details are hidden
// unless hideInternal is disabled.
func HandlerWithConfig(hideInternal bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *HTTPError

		switch e := err.(type) { //nolint:errorlint
		case *HTTPError:
			httpErr = e
		case *HTTPValidationError:
			if writeErr := c.JSON(int(swag.Int64Value(e.Status)), e); writeErr != nil {
				c.Logger().Error(writeErr)
			}
			return
		case *echo.HTTPError:
			httpErr = NewFromEcho(e)
			if e.Internal != nil && !hideInternal {
				httpErr.Detail = e.Internal.Error()
			}
		default:
			httpErr = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
			if !hideInternal {
				httpErr.Detail = err.Error()
			}
		}

		if writeErr := c.JSON(int(swag.Int64Value(httpErr.Status)), httpErr); writeErr != nil {
			c.Logger().Error(writeErr)
		}
	}
}
