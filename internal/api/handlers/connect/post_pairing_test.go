package connect_test

import (
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/api/httperrors"
	"github/kontos/connect/internal/connect/endpoint"
	"github/kontos/connect/internal/test"
	"github/kontos/connect/internal/types"
)

func TestPostPairing(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"uri": "wc:topic@2?relay-protocol=irn&symKey=abc",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/connect/pairings", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PairingResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "pending", swag.StringValue(response.Session.Status))
		assert.Equal(t, "topic@2", swag.StringValue(response.Session.Topic))

		assert.Equal(t, endpoint.DefaultBaseURL+"?wc=topic@2&relay-protocol=irn&symKey=abc", swag.StringValue(response.Target.WalletURL))
		assert.Equal(t, "popupKontosWallet", swag.StringValue(response.Target.PopupName))
		assert.Equal(t, int64(375), swag.Int64Value(response.Target.PopupWidth))
		assert.Equal(t, int64(667), swag.Int64Value(response.Target.PopupHeight))
		assert.Equal(t, "popup=yes,width=375,height=667", swag.StringValue(response.Target.Features))
	})
}

func TestPostPairingQueryPassthrough(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// everything after the first ? is passed through verbatim, including
		// a second ? in the query
		payload := test.GenericPayload{
			"uri": "wc:topic@1?a=1?b=2",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/connect/pairings", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PairingResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, endpoint.DefaultBaseURL+"?wc=topic@1&a=1?b=2", swag.StringValue(response.Target.WalletURL))
	})
}

func TestPostPairingInvalidURI(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		invalid := []string{
			"https://example.com?foo=bar",
			"wc:topic@2",
			"wc:topic@2?",
			"WC:topic@2?a=1",
		}

		for _, uri := range invalid {
			res := test.PerformRequest(t, s, "POST", "/api/v1/connect/pairings", test.GenericPayload{"uri": uri}, nil)
			test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidPairingURI)
		}
	})
}

func TestPostPairingMissingURI(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/connect/pairings", test.GenericPayload{}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
