package api

import (
	"context"
	"database/sql"
	"math/big"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/kontos/connect/internal/config"
	"github/kontos/connect/internal/connect/chain"
	"github/kontos/connect/internal/connect/endpoint"
	"github/kontos/connect/internal/connect/popup"
	"github/kontos/connect/internal/connect/session"
	"github/kontos/connect/internal/connect/verify"
	"github/kontos/connect/internal/metrics"
)

// PROVIDERS - https://github.com/google/wire/blob/main/docs/guide.md#providers

func NewDB(cfg config.Server) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	if lifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime); err == nil {
		db.SetConnMaxLifetime(lifetime)
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return db, nil
}

func NewClock() time2.Clock {
	return time2.DefaultClock
}

func NewEndpointBuilder(cfg config.Server) *endpoint.Builder {
	return endpoint.NewBuilder(cfg.Kontos.WalletBaseURL, cfg.Kontos.PopupSpec())
}

func NewPopupRegistry() *popup.Registry {
	return popup.NewRegistry()
}

func NewSessionService(db *sql.DB, builder *endpoint.Builder, popups *popup.Registry, clock time2.Clock, m *metrics.Service) SessionService {
	return session.NewService(db, builder, popups, clock, m)
}

// NewVerifyService dials the configured RPC endpoints. Without any, contract
// account detection is impossible and verification degrades to plain ECDSA
// recovery.
func NewVerifyService(cfg config.Server) (VerifyService, error) {
	if len(cfg.Kontos.RPCURLs) == 0 {
		return verify.NewService(offlineChainReader{})
	}

	client, err := chain.NewRPCClient(cfg.Kontos.RPCURLs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to rpc endpoints")
	}

	return verify.NewService(client)
}

// offlineChainReader reports every address as code-less.
type offlineChainReader struct{}

func (offlineChainReader) CodeAt(_ context.Context, _ common.Address, _ *big.Int) ([]byte, error) {
	return nil, nil
}

func (offlineChainReader) CallContract(_ context.Context, _ ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	return nil, errors.New("no rpc endpoint configured")
}
