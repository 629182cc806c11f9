package connect

import (
	"encoding/json"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
	"github/kontos/connect/internal/api/httperrors"
	"github/kontos/connect/internal/connect/pairing"
	"github/kontos/connect/internal/connect/popup"
	"github/kontos/connect/internal/connect/session"
	"github/kontos/connect/internal/types"
)

func toSessionResponse(sess *session.Session) *types.SessionResponse {
	resp := &types.SessionResponse{
		ID:        swag.String(sess.ID),
		Topic:     swag.String(sess.Topic),
		Status:    swag.String(sess.Status),
		CreatedAt: toDateTime(sess.CreatedAt),
		UpdatedAt: toDateTime(sess.UpdatedAt),
	}

	if sess.ChainID.Valid {
		resp.ChainID = int64(sess.ChainID.Int)
	}
	if sess.Accounts.Valid {
		// Accounts were marshalled by us, unmarshal cannot fail.
		_ = json.Unmarshal(sess.Accounts.JSON, &resp.Accounts)
	}

	return resp
}

func toSessionRequestResponse(req *session.Request) *types.SessionRequestResponse {
	resp := &types.SessionRequestResponse{
		ID:           swag.String(req.ID),
		SessionID:    swag.String(req.SessionID),
		Method:       swag.String(req.Method),
		Status:       swag.String(req.Status),
		UserRejected: req.UserRejected,
		CreatedAt:    toDateTime(req.CreatedAt),
	}

	if req.Params.Valid {
		resp.Params = json.RawMessage(req.Params.JSON)
	}
	if req.Result.Valid {
		resp.Result = json.RawMessage(req.Result.JSON)
	}
	if req.ErrorMessage.Valid {
		resp.ErrorMessage = req.ErrorMessage.String
	}
	if req.ResolvedAt.Valid {
		resp.ResolvedAt = toDateTime(req.ResolvedAt.Time)
	}

	return resp
}

func toConnectTargetResponse(target *session.ConnectTarget) *types.ConnectTargetResponse {
	return &types.ConnectTargetResponse{
		WalletURL:   swag.String(target.WalletURL),
		PopupName:   swag.String(target.PopupName),
		PopupWidth:  swag.Int64(int64(target.PopupWidth)),
		PopupHeight: swag.Int64(int64(target.PopupHeight)),
		Features:    swag.String(target.Features),
	}
}

func toDateTime(t time.Time) *strfmt.DateTime {
	dt := strfmt.DateTime(t)
	return &dt
}

// mapServiceError translates session service errors into their public HTTP
// representation. Unknown errors pass through and end up as 500s.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, pairing.ErrInvalidFormat):
		return httperrors.ErrBadRequestInvalidPairingURI
	case errors.Is(err, session.ErrUnsupportedMethod):
		return httperrors.ErrBadRequestUnsupportedMethod
	case errors.Is(err, session.ErrSessionNotFound):
		return httperrors.ErrNotFoundSession
	case errors.Is(err, session.ErrRequestNotFound):
		return httperrors.ErrNotFoundRequest
	case errors.Is(err, session.ErrSessionNotPending),
		errors.Is(err, session.ErrSessionNotApproved):
		return httperrors.ErrConflictSessionState
	case errors.Is(err, session.ErrRequestResolved):
		return httperrors.ErrConflictRequestResolved
	case errors.Is(err, session.ErrRequestPending),
		errors.Is(err, popup.ErrAlreadyOpen):
		return httperrors.ErrConflictPopupOpen
	default:
		return err
	}
}
