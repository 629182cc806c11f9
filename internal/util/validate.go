package util

import (
	"github.com/go-openapi/strfmt"
)

// Validatable is implemented by all payload types in internal/types.
type Validatable interface {
	Validate(formats strfmt.Registry) error
}
