package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostVerifySignaturePayload asks for verification of a personal_sign
// signature against an address.
type PostVerifySignaturePayload struct {
	// Account address, EOA or contract wallet (AA address)
	// Required: true
	Address *string `json:"address"`

	// The signed message, verbatim
	// Required: true
	Message *string `json:"message"`

	// Hex encoded signature (0x...)
	// Required: true
	Signature *string `json:"signature"`
}

// Validate validates this post verify signature payload
func (m *PostVerifySignaturePayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("message", "body", m.Message); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("signature", "body", m.Signature); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// VerifySignatureResponse reports the verification outcome.
type VerifySignatureResponse struct {
	// Required: true
	Valid *bool `json:"valid"`

	// Verification path taken: eoa or contract
	// Required: true
	Kind *string `json:"kind"`
}

// Validate validates this verify signature response
func (m *VerifySignatureResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("valid", "body", m.Valid); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("kind", "body", m.Kind); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
