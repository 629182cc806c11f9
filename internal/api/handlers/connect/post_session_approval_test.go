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

func TestPostSessionApproval(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)

		approved := approveTestSession(t, s, swag.StringValue(sess.ID))

		assert.Equal(t, int64(1), approved.ChainID)
		assert.Equal(t, []string{testAccount}, approved.Accounts)
	})
}

func TestPostSessionApprovalReject(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)

		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/sessions/%s/approval", swag.StringValue(sess.ID)), test.GenericPayload{
			"approved": false,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.SessionResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "rejected", swag.StringValue(response.Status))
	})
}

func TestPostSessionApprovalConflict(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)
		approveTestSession(t, s, swag.StringValue(sess.ID))

		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/sessions/%s/approval", swag.StringValue(sess.ID)), test.GenericPayload{
			"approved": true,
			"chain_id": 1,
			"accounts": []string{testAccount},
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrConflictSessionState)
	})
}

func TestPostSessionApprovalMissingAccounts(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)

		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/sessions/%s/approval", swag.StringValue(sess.ID)), test.GenericPayload{
			"approved": true,
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}

func TestPostSessionApprovalNotFound(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/connect/sessions/00000000-0000-0000-0000-000000000000/approval", test.GenericPayload{
			"approved": false,
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundSession)
	})
}
