// Package endpoint builds the Kontos web wallet URLs and the popup window
// parameters a DApp frontend needs to open them.
package endpoint

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github/kontos/connect/internal/connect/pairing"
)

const (
	// DefaultBaseURL is the Kontos web wallet home endpoint.
	DefaultBaseURL = "https://wallet.kontos.io/home"

	// DefaultPopupName is the fixed window name the wallet expects.
	DefaultPopupName = "popupKontosWallet"

	DefaultPopupWidth  = 375
	DefaultPopupHeight = 667
)

// PopupSpec describes the popup window the frontend should open.
type PopupSpec struct {
	Name   string
	Width  int
	Height int
}

// Features renders the spec as a window.open features string.
func (p PopupSpec) Features() string {
	return fmt.Sprintf("popup=yes,width=%d,height=%d", p.Width, p.Height)
}

// Builder constructs wallet endpoint URLs from a configured base.
type Builder struct {
	baseURL string
	popup   PopupSpec
}

// NewBuilder returns a Builder for the given base URL. Empty arguments fall
// back to the documented Kontos defaults.
func NewBuilder(baseURL string, popup PopupSpec) *Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if popup.Name == "" {
		popup.Name = DefaultPopupName
	}
	if popup.Width <= 0 {
		popup.Width = DefaultPopupWidth
	}
	if popup.Height <= 0 {
		popup.Height = DefaultPopupHeight
	}

	return &Builder{
		baseURL: strings.TrimRight(baseURL, "/"),
		popup:   popup,
	}
}

// ConnectURL returns the wallet URL carrying the reformatted pairing, used
// when initiating a new connection.
func (b *Builder) ConnectURL(pairingURI string) (string, error) {
	query, err := pairing.Reformat(pairingURI)
	if err != nil {
		return "", errors.Wrap(err, "failed to reformat pairing uri")
	}

	return b.baseURL + query, nil
}

// RequestURL returns the bare wallet URL, used when opening the popup for a
// session request on an already established pairing.
func (b *Builder) RequestURL() string {
	return b.baseURL
}

// Popup returns the popup window spec for this wallet endpoint.
func (b *Builder) Popup() PopupSpec {
	return b.popup
}
