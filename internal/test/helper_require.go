package test

import (
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/require"
	"github/kontos/connect/internal/api/httperrors"
	"github/kontos/connect/internal/types"
)

// RequireHTTPError asserts that the response carries the given public error.
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, httpError *httperrors.HTTPError) {
	t.Helper()

	require.Equal(t, int(swag.Int64Value(httpError.Status)), res.Result().StatusCode)

	var response types.PublicHTTPError
	ParseResponseAndValidate(t, res, &response)

	require.Equal(t, swag.StringValue(httpError.Type), swag.StringValue(response.Type))
	require.Equal(t, swag.StringValue(httpError.Title), swag.StringValue(response.Title))
}
