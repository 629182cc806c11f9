package endpoint_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/kontos/connect/internal/connect/endpoint"
	"github/kontos/connect/internal/connect/pairing"
)

func TestConnectURL(t *testing.T) {
	b := endpoint.NewBuilder("", endpoint.PopupSpec{})

	url, err := b.ConnectURL("wc:abc123@2?relay-protocol=irn&symKey=deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "https://wallet.kontos.io/home?wc=abc123@2&relay-protocol=irn&symKey=deadbeef", url)
}

func TestConnectURLInvalidPairing(t *testing.T) {
	b := endpoint.NewBuilder("", endpoint.PopupSpec{})

	_, err := b.ConnectURL("https://example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pairing.ErrInvalidFormat))
}

func TestConnectURLCustomBase(t *testing.T) {
	b := endpoint.NewBuilder("https://wallet.staging.kontos.io/home/", endpoint.PopupSpec{})

	url, err := b.ConnectURL("wc:topic@1?a=1")
	require.NoError(t, err)
	assert.Equal(t, "https://wallet.staging.kontos.io/home?wc=topic@1&a=1", url)
}

func TestRequestURL(t *testing.T) {
	b := endpoint.NewBuilder("", endpoint.PopupSpec{})
	assert.Equal(t, "https://wallet.kontos.io/home", b.RequestURL())
}

func TestPopupDefaults(t *testing.T) {
	b := endpoint.NewBuilder("", endpoint.PopupSpec{})

	popup := b.Popup()
	assert.Equal(t, "popupKontosWallet", popup.Name)
	assert.Equal(t, 375, popup.Width)
	assert.Equal(t, 667, popup.Height)
	assert.Equal(t, "popup=yes,width=375,height=667", popup.Features())
}
