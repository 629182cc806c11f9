package types

import (
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostPairingPayload initiates a connection from a WalletConnect pairing URI.
type PostPairingPayload struct {
	// WalletConnect pairing URI (wc:<topic>@<version>?<query>)
	// Required: true
	URI *string `json:"uri"`
}

// Validate validates this post pairing payload
func (m *PostPairingPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("uri", "body", m.URI); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ConnectTargetResponse tells the frontend which URL to open and how.
type ConnectTargetResponse struct {
	// Wallet URL to open in the popup
	// Required: true
	WalletURL *string `json:"wallet_url"`

	// Fixed popup window name
	// Required: true
	PopupName *string `json:"popup_name"`

	// Required: true
	PopupWidth *int64 `json:"popup_width"`

	// Required: true
	PopupHeight *int64 `json:"popup_height"`

	// window.open features string
	// Required: true
	Features *string `json:"features"`
}

// Validate validates this connect target response
func (m *ConnectTargetResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("wallet_url", "body", m.WalletURL); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("popup_name", "body", m.PopupName); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("popup_width", "body", m.PopupWidth); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("popup_height", "body", m.PopupHeight); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("features", "body", m.Features); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// SessionResponse is the public view of a session.
type SessionResponse struct {
	// Required: true
	ID *string `json:"id"`

	// Pairing topic (<topic>@<version>)
	// Required: true
	Topic *string `json:"topic"`

	// Required: true
	Status *string `json:"status"`

	ChainID int64 `json:"chain_id,omitempty"`

	Accounts []string `json:"accounts,omitempty"`

	// Required: true
	CreatedAt *strfmt.DateTime `json:"created_at"`

	// Required: true
	UpdatedAt *strfmt.DateTime `json:"updated_at"`
}

// Validate validates this session response
func (m *SessionResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("topic", "body", m.Topic); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("status", "body", m.Status); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("created_at", "body", m.CreatedAt); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("updated_at", "body", m.UpdatedAt); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PairingResponse is returned when a connection flow is initiated.
type PairingResponse struct {
	// Required: true
	Session *SessionResponse `json:"session"`

	// Required: true
	Target *ConnectTargetResponse `json:"target"`
}

// Validate validates this pairing response
func (m *PairingResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if m.Session == nil {
		res = append(res, validate.Required("session", "body", m.Session))
	} else if err := m.Session.Validate(formats); err != nil {
		res = append(res, err)
	}

	if m.Target == nil {
		res = append(res, validate.Required("target", "body", m.Target))
	} else if err := m.Target.Validate(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// SessionListResponse wraps a list of sessions.
type SessionListResponse struct {
	// Required: true
	Sessions []*SessionResponse `json:"sessions"`
}

// Validate validates this session list response
func (m *SessionListResponse) Validate(formats strfmt.Registry) error {
	var res []error

	for i := range m.Sessions {
		if m.Sessions[i] == nil {
			continue
		}
		if err := m.Sessions[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PostSessionApprovalPayload is the wallet frontend's approval callback.
type PostSessionApprovalPayload struct {
	// Required: true
	Approved *bool `json:"approved"`

	// Chain the wallet approved for, required when approved
	ChainID int64 `json:"chain_id,omitempty"`

	// Approved account addresses (AA addresses for Kontos accounts),
	// required when approved
	Accounts []string `json:"accounts,omitempty"`
}

// Validate validates this post session approval payload
func (m *PostSessionApprovalPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("approved", "body", m.Approved); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PostSessionRequestPayload dispatches a session request to the wallet.
type PostSessionRequestPayload struct {
	// Protocol method name, must be on the supported list
	// Required: true
	Method *string `json:"method"`

	// Raw JSON-RPC params, passed through opaquely
	Params json.RawMessage `json:"params,omitempty"`
}

// Validate validates this post session request payload
func (m *PostSessionRequestPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("method", "body", m.Method); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// SessionRequestResponse is the public view of a session request.
type SessionRequestResponse struct {
	// Required: true
	ID *string `json:"id"`

	// Required: true
	SessionID *string `json:"session_id"`

	// Required: true
	Method *string `json:"method"`

	Params json.RawMessage `json:"params,omitempty"`

	// Required: true
	Status *string `json:"status"`

	Result json.RawMessage `json:"result,omitempty"`

	ErrorMessage string `json:"error_message,omitempty"`

	UserRejected bool `json:"user_rejected,omitempty"`

	// Required: true
	CreatedAt *strfmt.DateTime `json:"created_at"`

	ResolvedAt *strfmt.DateTime `json:"resolved_at,omitempty"`
}

// Validate validates this session request response
func (m *SessionRequestResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("session_id", "body", m.SessionID); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("method", "body", m.Method); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("status", "body", m.Status); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("created_at", "body", m.CreatedAt); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// SessionRequestCreatedResponse is returned when a request was dispatched.
type SessionRequestCreatedResponse struct {
	// Required: true
	Request *SessionRequestResponse `json:"request"`

	// Required: true
	Target *ConnectTargetResponse `json:"target"`
}

// Validate validates this session request created response
func (m *SessionRequestCreatedResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if m.Request == nil {
		res = append(res, validate.Required("request", "body", m.Request))
	} else if err := m.Request.Validate(formats); err != nil {
		res = append(res, err)
	}

	if m.Target == nil {
		res = append(res, validate.Required("target", "body", m.Target))
	} else if err := m.Target.Validate(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// SessionRequestListResponse wraps a list of session requests.
type SessionRequestListResponse struct {
	// Required: true
	Requests []*SessionRequestResponse `json:"requests"`
}

// Validate validates this session request list response
func (m *SessionRequestListResponse) Validate(formats strfmt.Registry) error {
	var res []error

	for i := range m.Requests {
		if m.Requests[i] == nil {
			continue
		}
		if err := m.Requests[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PostRequestResultPayload is the wallet frontend's result callback for a
// session request. Exactly one of result or error is expected; a user who
// closed the popup is reported via user_rejected.
type PostRequestResultPayload struct {
	Result json.RawMessage `json:"result,omitempty"`

	Error string `json:"error,omitempty"`

	UserRejected bool `json:"user_rejected,omitempty"`
}

// Validate validates this post request result payload
func (m *PostRequestResultPayload) Validate(_ strfmt.Registry) error {
	return nil
}
