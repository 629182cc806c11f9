package util

import (
	"net/http"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api/httperrors"
	"github/kontos/connect/internal/types"
)

// BindAndValidateBody binds the request body to v and runs its validation,
// translating validation failures into an HTTPValidationError the global
// error handler can render.
func BindAndValidateBody(c echo.Context, v Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return echo.ErrInternalServerError
	}

	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload before writing it,
// ensuring the service never emits a response violating its own contract.
func ValidateAndReturn(c echo.Context, code int, v Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Error().Err(err).Msg("Response payload validation failed")
		return echo.ErrInternalServerError
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v Validatable) error {
	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	details := validationErrorDetails(err)

	LogFromEchoContext(c).Debug().Int("validation_errors", len(details)).Err(err).Msg("Payload validation failed")

	return httperrors.NewHTTPValidationError(
		http.StatusBadRequest,
		types.PublicHTTPErrorTypeGeneric,
		http.StatusText(http.StatusBadRequest),
		details,
	)
}

// validationErrorDetails flattens go-openapi composite errors into the
// public detail shape.
func validationErrorDetails(err error) []*types.HTTPValidationErrorDetail {
	var details []*types.HTTPValidationErrorDetail

	switch e := err.(type) { //nolint:errorlint
	case *openapierrors.CompositeError:
		for _, nested := range e.Errors {
			details = append(details, validationErrorDetails(nested)...)
		}
	case *openapierrors.Validation:
		details = append(details, &types.HTTPValidationErrorDetail{
			Key:   swag.String(e.Name),
			In:    swag.String(e.In),
			Error: swag.String(e.Error()),
		})
	default:
		details = append(details, &types.HTTPValidationErrorDetail{
			Key:   swag.String("body"),
			In:    swag.String("body"),
			Error: swag.String(err.Error()),
		})
	}

	return details
}
