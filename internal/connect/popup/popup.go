// Package popup models the wallet popup window as an explicit handle that is
// threaded from open to close, instead of a process-wide singleton reference.
package popup

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/kontos/connect/internal/connect/endpoint"
)

var (
	// ErrBlocked is returned by an Opener when the hosting browser refused
	// to open the window.
	ErrBlocked = errors.New("popup: window blocked")

	// ErrAlreadyOpen is returned when a popup is already tracked for the
	// same owner. At most one popup is open at a time per flow.
	ErrAlreadyOpen = errors.New("popup: already open for owner")
)

// Handle identifies a single opened popup window.
type Handle struct {
	ID       string
	Owner    string
	URL      string
	Spec     endpoint.PopupSpec
	OpenedAt time.Time

	closeOnce sync.Once
	closeFn   func()
}

// Close releases the window. It is safe to call multiple times; only the
// first call runs the release.
func (h *Handle) Close() {
	h.closeOnce.Do(func() {
		if h.closeFn != nil {
			h.closeFn()
		}
	})
}

// Opener opens a popup window for the given owner (session or request id).
type Opener interface {
	Open(ctx context.Context, owner string, url string, spec endpoint.PopupSpec) (*Handle, error)
}

// Registry is an Opener that tracks open handles, enforcing the
// one-popup-per-owner rule and giving Close a concrete release action.
type Registry struct {
	mu   sync.Mutex
	open map[string]*Handle
}

func NewRegistry() *Registry {
	return &Registry{
		open: make(map[string]*Handle),
	}
}

// Open registers a new handle for owner.
func (r *Registry) Open(_ context.Context, owner string, url string, spec endpoint.PopupSpec) (*Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.open[owner]; exists {
		return nil, errors.WithStack(ErrAlreadyOpen)
	}

	h := &Handle{
		ID:       uuid.NewString(),
		Owner:    owner,
		URL:      url,
		Spec:     spec,
		OpenedAt: time.Now(),
	}
	h.closeFn = func() { r.release(owner, h.ID) }

	r.open[owner] = h

	return h, nil
}

// Get returns the currently tracked handle for owner, if any.
func (r *Registry) Get(owner string) (*Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.open[owner]
	return h, ok
}

// CloseOwner closes the tracked handle for owner, if any.
func (r *Registry) CloseOwner(owner string) {
	r.mu.Lock()
	h := r.open[owner]
	r.mu.Unlock()

	if h != nil {
		h.Close()
	}
}

func (r *Registry) release(owner, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Only drop the mapping if it still points at the same handle.
	if h, ok := r.open[owner]; ok && h.ID == id {
		delete(r.open, owner)
	}
}

// With opens a popup, runs fn with the handle and closes the popup on every
// exit path, including errors and panics.
func With(ctx context.Context, opener Opener, owner string, url string, spec endpoint.PopupSpec, fn func(ctx context.Context, h *Handle) error) error {
	h, err := opener.Open(ctx, owner, url, spec)
	if err != nil {
		return errors.Wrap(err, "failed to open popup")
	}
	defer h.Close()

	return fn(ctx, h)
}
