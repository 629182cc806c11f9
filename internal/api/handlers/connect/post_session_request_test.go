package connect_test

import (
	"fmt"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/api/httperrors"
	"github/kontos/connect/internal/connect/endpoint"
	"github/kontos/connect/internal/test"
)

func TestPostSessionRequest(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)
		approveTestSession(t, s, swag.StringValue(sess.ID))

		created := createTestRequest(t, s, swag.StringValue(sess.ID), "personal_sign")

		assert.Equal(t, "pending", swag.StringValue(created.Request.Status))
		assert.Equal(t, "personal_sign", swag.StringValue(created.Request.Method))
		assert.NotEmpty(t, created.Request.Params)

		// the pairing is established, the popup opens on the bare wallet URL
		assert.Equal(t, endpoint.DefaultBaseURL, swag.StringValue(created.Target.WalletURL))
		assert.Equal(t, "popupKontosWallet", swag.StringValue(created.Target.PopupName))
	})
}

func TestPostSessionRequestUnsupportedMethod(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)
		approveTestSession(t, s, swag.StringValue(sess.ID))

		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/sessions/%s/requests", swag.StringValue(sess.ID)), test.GenericPayload{
			"method": "eth_getBalance",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestUnsupportedMethod)
	})
}

func TestPostSessionRequestNotApproved(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)

		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/sessions/%s/requests", swag.StringValue(sess.ID)), test.GenericPayload{
			"method": "personal_sign",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrConflictSessionState)
	})
}

func TestPostSessionRequestWhilePending(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		sess := createTestSession(t, s)
		approveTestSession(t, s, swag.StringValue(sess.ID))
		createTestRequest(t, s, swag.StringValue(sess.ID), "personal_sign")

		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/connect/sessions/%s/requests", swag.StringValue(sess.ID)), test.GenericPayload{
			"method": "eth_sendTransaction",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrConflictPopupOpen)
	})
}
