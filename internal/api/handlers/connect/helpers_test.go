package connect_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/require"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/test"
	"github/kontos/connect/internal/types"
)

const testAccount = "0x00000000000000000000000000000000000000aa"

func createTestSession(t *testing.T, s *api.Server) *types.SessionResponse {
	t.Helper()

	res := test.PerformRequest(t, s, "POST", "/api/v1/connect/pairings", test.GenericPayload{
		"uri": "wc:topic@2?relay-protocol=irn&symKey=abc",
	}, nil)
	require.Equal(t, http.StatusOK, res.Result().StatusCode)

	var response types.PairingResponse
	test.ParseResponseAndValidate(t, res, &response)

	return response.Session
}

func approveTestSession(t *testing.T, s *api.Server, id string) *types.SessionResponse {
	t.Helper()

	res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/sessions/%s/approval", id), test.GenericPayload{
		"approved": true,
		"chain_id": 1,
		"accounts": []string{testAccount},
	}, nil)
	require.Equal(t, http.StatusOK, res.Result().StatusCode)

	var response types.SessionResponse
	test.ParseResponseAndValidate(t, res, &response)
	require.Equal(t, "approved", swag.StringValue(response.Status))

	return &response
}

func createTestRequest(t *testing.T, s *api.Server, sessionID string, method string) *types.SessionRequestCreatedResponse {
	t.Helper()

	res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/sessions/%s/requests", sessionID), test.GenericPayload{
		"method": method,
		"params": []interface{}{"0xdeadbeef", testAccount},
	}, nil)
	require.Equal(t, http.StatusOK, res.Result().StatusCode)

	var response types.SessionRequestCreatedResponse
	test.ParseResponseAndValidate(t, res, &response)

	return &response
}
