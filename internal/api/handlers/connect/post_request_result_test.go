package connect_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/api/httperrors"
	"github/kontos/connect/internal/test"
	"github/kontos/connect/internal/types"
)

func TestPostRequestResult(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)
		approveTestSession(t, s, swag.StringValue(sess.ID))
		created := createTestRequest(t, s, swag.StringValue(sess.ID), "personal_sign")

		id := swag.StringValue(created.Request.ID)
		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/requests/%s/result", id), test.GenericPayload{
			"result": "0xsignature",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.SessionRequestResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "resolved", swag.StringValue(response.Status))
		assert.NotNil(t, response.ResolvedAt)

		// a finished request stays finished
		res = test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/requests/%s/result", id), test.GenericPayload{
			"result": "0xother",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrConflictRequestResolved)
	})
}

func TestPostRequestResultError(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)
		approveTestSession(t, s, swag.StringValue(sess.ID))
		created := createTestRequest(t, s, swag.StringValue(sess.ID), "eth_signTypedData_v4")

		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/requests/%s/result", swag.StringValue(created.Request.ID)), test.GenericPayload{
			"error": "user denied message signature",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.SessionRequestResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "failed", swag.StringValue(response.Status))
		assert.Equal(t, "user denied message signature", response.ErrorMessage)
	})
}

func TestPostRequestResultUserRejected(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)
		approveTestSession(t, s, swag.StringValue(sess.ID))
		created := createTestRequest(t, s, swag.StringValue(sess.ID), "eth_sendTransaction")

		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/requests/%s/result", swag.StringValue(created.Request.ID)), test.GenericPayload{
			"user_rejected": true,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.SessionRequestResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "abandoned", swag.StringValue(response.Status))
		assert.True(t, response.UserRejected)
	})
}

func TestPostRequestResultNotFound(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/connect/requests/00000000-0000-0000-0000-000000000000/result", test.GenericPayload{
			"result": "0x",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundRequest)
	})
}
