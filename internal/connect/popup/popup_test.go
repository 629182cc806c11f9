package popup_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/kontos/connect/internal/connect/endpoint"
	"github/kontos/connect/internal/connect/popup"
)

func TestRegistryOpenClose(t *testing.T) {
	ctx := t.Context()
	r := popup.NewRegistry()
	spec := endpoint.PopupSpec{Name: "popupKontosWallet", Width: 375, Height: 667}

	h, err := r.Open(ctx, "session-1", "https://wallet.kontos.io/home", spec)
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "session-1", h.Owner)

	_, open := r.Get("session-1")
	assert.True(t, open)

	// second open for the same owner is refused
	_, err = r.Open(ctx, "session-1", "https://wallet.kontos.io/home", spec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, popup.ErrAlreadyOpen))

	h.Close()
	_, open = r.Get("session-1")
	assert.False(t, open)

	// close is idempotent
	h.Close()

	// owner is free again after close
	_, err = r.Open(ctx, "session-1", "https://wallet.kontos.io/home", spec)
	require.NoError(t, err)
}

func TestRegistryCloseOwner(t *testing.T) {
	ctx := t.Context()
	r := popup.NewRegistry()

	_, err := r.Open(ctx, "session-2", "https://wallet.kontos.io/home", endpoint.PopupSpec{})
	require.NoError(t, err)

	r.CloseOwner("session-2")
	_, open := r.Get("session-2")
	assert.False(t, open)

	// closing an unknown owner is a no-op
	r.CloseOwner("session-3")
}

func TestWithClosesOnError(t *testing.T) {
	ctx := t.Context()
	r := popup.NewRegistry()

	testErr := errors.New("round trip failed")
	err := popup.With(ctx, r, "session-4", "https://wallet.kontos.io/home", endpoint.PopupSpec{}, func(_ context.Context, h *popup.Handle) error {
		_, open := r.Get("session-4")
		assert.True(t, open)
		return testErr
	})

	assert.Equal(t, testErr, errors.Cause(err))
	_, open := r.Get("session-4")
	assert.False(t, open)
}

type blockedOpener struct{}

func (blockedOpener) Open(_ context.Context, _ string, _ string, _ endpoint.PopupSpec) (*popup.Handle, error) {
	return nil, popup.ErrBlocked
}

func TestWithPropagatesBlocked(t *testing.T) {
	err := popup.With(t.Context(), blockedOpener{}, "session-5", "https://wallet.kontos.io/home", endpoint.PopupSpec{}, func(_ context.Context, _ *popup.Handle) error {
		t.Fatal("fn must not run when the popup is blocked")
		return nil
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, popup.ErrBlocked))
}
