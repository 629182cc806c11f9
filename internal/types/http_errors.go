package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// Public error type identifiers, stable API contract.
const (
	PublicHTTPErrorTypeGeneric                = "generic"
	PublicHTTPErrorTypeINVALIDPAIRINGURI      = "INVALID_PAIRING_URI"
	PublicHTTPErrorTypeUNSUPPORTEDMETHOD      = "UNSUPPORTED_METHOD"
	PublicHTTPErrorTypeSESSIONSTATECONFLICT   = "SESSION_STATE_CONFLICT"
	PublicHTTPErrorTypeREQUESTALREADYRESOLVED = "REQUEST_ALREADY_RESOLVED"
	PublicHTTPErrorTypePOPUPALREADYOPEN       = "POPUP_ALREADY_OPEN"
)

// PublicHTTPError is the wire representation of an error response.
type PublicHTTPError struct {
	// HTTP status code
	// Required: true
	Status *int64 `json:"status"`

	// Error type identifier
	// Required: true
	Type *string `json:"type"`

	// Short human readable error title
	// Required: true
	Title *string `json:"title"`

	// Additional detail, only present in debug builds
	Detail string `json:"detail,omitempty"`
}

// Validate validates this public HTTP error
func (m *PublicHTTPError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("status", "body", m.Status); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("type", "body", m.Type); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("title", "body", m.Title); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PublicHTTPValidationError extends PublicHTTPError with per-field details.
type PublicHTTPValidationError struct {
	PublicHTTPError

	// List of failed validations
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// Validate validates this public HTTP validation error
func (m *PublicHTTPValidationError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.PublicHTTPError.Validate(formats); err != nil {
		res = append(res, err)
	}

	for i := range m.ValidationErrors {
		if m.ValidationErrors[i] == nil {
			continue
		}
		if err := m.ValidationErrors[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// HTTPValidationErrorDetail describes a single failed validation.
type HTTPValidationErrorDetail struct {
	// Key of the field that failed validation
	// Required: true
	Key *string `json:"key"`

	// Location of the field (body, query, path)
	// Required: true
	In *string `json:"in"`

	// Description of the failure
	// Required: true
	Error *string `json:"error"`
}

// Validate validates this HTTP validation error detail
func (m *HTTPValidationErrorDetail) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("key", "body", m.Key); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("in", "body", m.In); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("error", "body", m.Error); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// AsString renders the detail for logging.
func (m *HTTPValidationErrorDetail) AsString() string {
	return swag.StringValue(m.Key) + " in " + swag.StringValue(m.In) + ": " + swag.StringValue(m.Error)
}
