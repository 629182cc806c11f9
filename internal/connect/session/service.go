package session

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/dropbox/godropbox/time2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/kontos/connect/internal/connect/endpoint"
	"github/kontos/connect/internal/connect/pairing"
	"github/kontos/connect/internal/connect/popup"
	"github/kontos/connect/internal/metrics"
	"github/kontos/connect/internal/util"
	"github/kontos/connect/internal/util/db"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrRequestNotFound    = errors.New("session request not found")
	ErrUnsupportedMethod  = errors.New("session request method not supported")
	ErrSessionNotPending  = errors.New("session is not pending")
	ErrSessionNotApproved = errors.New("session is not approved")
	ErrRequestResolved    = errors.New("session request already resolved")
	ErrRequestPending     = errors.New("session already has a pending request")
)

// Service manages WalletConnect sessions and session requests against the
// Kontos wallet.
type Service interface {
	CreateFromPairing(ctx context.Context, pairingURI string) (*Session, *ConnectTarget, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	ListSessions(ctx context.Context, statuses []string) ([]*Session, error)
	ApproveSession(ctx context.Context, id string, chainID int, accounts []string) (*Session, error)
	RejectSession(ctx context.Context, id string) (*Session, error)
	DisconnectSession(ctx context.Context, id string) (*Session, error)

	CreateRequest(ctx context.Context, sessionID string, method string, params json.RawMessage) (*Request, *ConnectTarget, error)
	GetRequest(ctx context.Context, id string) (*Request, error)
	ListRequests(ctx context.Context, sessionID string) ([]*Request, error)
	ResolveRequest(ctx context.Context, id string, result json.RawMessage) (*Request, error)
	FailRequest(ctx context.Context, id string, message string) (*Request, error)
	AbandonRequest(ctx context.Context, id string) (*Request, error)
}

type service struct {
	db       *sql.DB
	store    *store
	endpoint *endpoint.Builder
	popups   *popup.Registry
	clock    time2.Clock
	metrics  *metrics.Service
}

// NewService creates the session service.
//
//nolint:ireturn
func NewService(sqlDB *sql.DB, builder *endpoint.Builder, popups *popup.Registry, clock time2.Clock, m *metrics.Service) Service {
	return &service{
		db:       sqlDB,
		store:    newStore(sqlDB),
		endpoint: builder,
		popups:   popups,
		clock:    clock,
		metrics:  m,
	}
}

// CreateFromPairing reformats the pairing URI into a wallet connect URL,
// persists a pending session and registers the popup the frontend is about
// to open. A malformed URI fails hard before anything is stored.
func (s *service) CreateFromPairing(ctx context.Context, pairingURI string) (*Session, *ConnectTarget, error) {
	log := util.LogFromContext(ctx)

	walletURL, err := s.endpoint.ConnectURL(pairingURI)
	if err != nil {
		s.metrics.IncPairingRejected()
		return nil, nil, err
	}

	// ConnectURL already validated the shape, Topic cannot fail here.
	topic, err := pairing.Topic(pairingURI)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to extract pairing topic")
	}

	now := s.clock.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		Topic:     topic,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = db.WithTransaction(ctx, s.db, func(tx boil.ContextExecutor) error {
		return s.store.insertSession(ctx, tx, sess)
	})
	if err != nil {
		return nil, nil, err
	}

	target, err := s.openPopup(ctx, sess.ID, walletURL)
	if err != nil {
		return nil, nil, err
	}

	s.metrics.IncSessionCreated()
	log.Info().
		Str("session_id", sess.ID).
		Str("topic", sess.Topic).
		Msg("Session created from pairing")

	return sess, target, nil
}

func (s *service) GetSession(ctx context.Context, id string) (*Session, error) {
	return s.store.getSession(ctx, id)
}

func (s *service) ListSessions(ctx context.Context, statuses []string) ([]*Session, error) {
	return s.store.listSessions(ctx, statuses)
}

// ApproveSession records the wallet's approval callback. The connect popup is
// closed on success and failure alike.
func (s *service) ApproveSession(ctx context.Context, id string, chainID int, accounts []string) (*Session, error) {
	defer s.popups.CloseOwner(id)

	sess, err := s.store.getSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if sess.Status != StatusPending {
		return nil, errors.WithStack(ErrSessionNotPending)
	}

	accountsJSON, err := json.Marshal(accounts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal accounts")
	}

	sess.Status = StatusApproved
	sess.ChainID = null.IntFrom(chainID)
	sess.Accounts = null.JSONFrom(accountsJSON)
	sess.UpdatedAt = s.clock.Now()

	err = db.WithTransaction(ctx, s.db, func(tx boil.ContextExecutor) error {
		return s.store.updateSession(ctx, tx, sess)
	})
	if err != nil {
		return nil, err
	}

	util.LogFromContext(ctx).Info().
		Str("session_id", sess.ID).
		Int("chain_id", chainID).
		Int("accounts", len(accounts)).
		Msg("Session approved")

	return sess, nil
}

// RejectSession records the wallet's rejection callback and closes the popup.
func (s *service) RejectSession(ctx context.Context, id string) (*Session, error) {
	defer s.popups.CloseOwner(id)

	sess, err := s.store.getSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if sess.Status != StatusPending {
		return nil, errors.WithStack(ErrSessionNotPending)
	}

	sess.Status = StatusRejected
	sess.UpdatedAt = s.clock.Now()

	err = db.WithTransaction(ctx, s.db, func(tx boil.ContextExecutor) error {
		return s.store.updateSession(ctx, tx, sess)
	})
	if err != nil {
		return nil, err
	}

	util.LogFromContext(ctx).Info().Str("session_id", sess.ID).Msg("Session rejected")

	return sess, nil
}

// DisconnectSession terminates an approved session.
func (s *service) DisconnectSession(ctx context.Context, id string) (*Session, error) {
	defer s.popups.CloseOwner(id)

	sess, err := s.store.getSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if sess.Status != StatusApproved {
		return nil, errors.WithStack(ErrSessionNotApproved)
	}

	sess.Status = StatusDisconnected
	sess.UpdatedAt = s.clock.Now()

	err = db.WithTransaction(ctx, s.db, func(tx boil.ContextExecutor) error {
		return s.store.updateSession(ctx, tx, sess)
	})
	if err != nil {
		return nil, err
	}

	util.LogFromContext(ctx).Info().Str("session_id", sess.ID).Msg("Session disconnected")

	return sess, nil
}

// CreateRequest validates the method against the wallet's allowlist, persists
// a pending request and registers the popup pointing at the bare wallet URL.
func (s *service) CreateRequest(ctx context.Context, sessionID string, method string, params json.RawMessage) (*Request, *ConnectTarget, error) {
	if !IsSupportedMethod(method) {
		return nil, nil, errors.WithStack(ErrUnsupportedMethod)
	}

	sess, err := s.store.getSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	if sess.Status != StatusApproved {
		return nil, nil, errors.WithStack(ErrSessionNotApproved)
	}

	// The wallet popup carries a fixed window name, a second concurrent
	// request would hijack the window of the first one.
	pending, err := s.store.countPendingRequests(ctx, sess.ID)
	if err != nil {
		return nil, nil, err
	}
	if pending > 0 {
		return nil, nil, errors.WithStack(ErrRequestPending)
	}

	now := s.clock.Now()
	req := &Request{
		ID:        uuid.NewString(),
		SessionID: sess.ID,
		Method:    method,
		Status:    RequestStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(params) > 0 {
		req.Params = null.JSONFrom(params)
	}

	err = db.WithTransaction(ctx, s.db, func(tx boil.ContextExecutor) error {
		return s.store.insertRequest(ctx, tx, req)
	})
	if err != nil {
		return nil, nil, err
	}

	target, err := s.openPopup(ctx, req.ID, s.endpoint.RequestURL())
	if err != nil {
		return nil, nil, err
	}

	s.metrics.IncRequestCreated(method)
	util.LogFromContext(ctx).Info().
		Str("session_id", sess.ID).
		Str("request_id", req.ID).
		Str("method", method).
		Msg("Session request created")

	return req, target, nil
}

func (s *service) GetRequest(ctx context.Context, id string) (*Request, error) {
	return s.store.getRequest(ctx, id)
}

func (s *service) ListRequests(ctx context.Context, sessionID string) ([]*Request, error) {
	if _, err := s.store.getSession(ctx, sessionID); err != nil {
		return nil, err
	}

	return s.store.listRequests(ctx, sessionID)
}

// ResolveRequest records the wallet's result for a pending request.
func (s *service) ResolveRequest(ctx context.Context, id string, result json.RawMessage) (*Request, error) {
	return s.finishRequest(ctx, id, func(req *Request) {
		req.Status = RequestStatusResolved
		if len(result) > 0 {
			req.Result = null.JSONFrom(result)
		}
	})
}

// FailRequest records a wallet-side failure for a pending request.
func (s *service) FailRequest(ctx context.Context, id string, message string) (*Request, error) {
	return s.finishRequest(ctx, id, func(req *Request) {
		req.Status = RequestStatusFailed
		req.ErrorMessage = null.StringFrom(message)
	})
}

// AbandonRequest marks a pending request whose popup the user closed before
// the round trip finished.
func (s *service) AbandonRequest(ctx context.Context, id string) (*Request, error) {
	return s.finishRequest(ctx, id, func(req *Request) {
		req.Status = RequestStatusAbandoned
		req.UserRejected = true
	})
}

// finishRequest applies a terminal transition. The popup is closed no matter
// how the transition turns out.
func (s *service) finishRequest(ctx context.Context, id string, apply func(req *Request)) (*Request, error) {
	defer s.popups.CloseOwner(id)

	req, err := s.store.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != RequestStatusPending {
		return nil, errors.WithStack(ErrRequestResolved)
	}

	apply(req)
	now := s.clock.Now()
	req.UpdatedAt = now
	req.ResolvedAt = null.TimeFrom(now)

	err = db.WithTransaction(ctx, s.db, func(tx boil.ContextExecutor) error {
		return s.store.updateRequest(ctx, tx, req)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncRequestFinished(req.Status)
	util.LogFromContext(ctx).Info().
		Str("request_id", req.ID).
		Str("status", req.Status).
		Msg("Session request finished")

	return req, nil
}

// openPopup registers the popup handle for owner and translates it into the
// frontend-facing target.
func (s *service) openPopup(ctx context.Context, owner string, url string) (*ConnectTarget, error) {
	spec := s.endpoint.Popup()

	handle, err := s.popups.Open(ctx, owner, url, spec)
	if err != nil {
		return nil, err
	}

	return &ConnectTarget{
		WalletURL:   handle.URL,
		PopupName:   spec.Name,
		PopupWidth:  spec.Width,
		PopupHeight: spec.Height,
		Features:    spec.Features(),
	}, nil
}
