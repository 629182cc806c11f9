package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/kontos/connect/internal/config"
	"github/kontos/connect/internal/connect/endpoint"
	"github/kontos/connect/internal/connect/popup"
	"github/kontos/connect/internal/connect/session"
	"github/kontos/connect/internal/connect/verify"
	"github/kontos/connect/internal/metrics"
	"github/kontos/connect/internal/util"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

// SessionService handles session and session request lifecycles.
// Alias to session.Service for API access
type SessionService = session.Service

// VerifyService handles signature verification.
// Alias to verify.Service for API access
type VerifyService = verify.Service

type Router struct {
	Routes       []*echo.Route
	Root         *echo.Group
	Management   *echo.Group
	APIV1Connect *echo.Group
	APIV1Verify  *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config   config.Server
	DB       *sql.DB
	Clock    time2.Clock
	Metrics  *metrics.Service
	Endpoint *endpoint.Builder
	Popups   *popup.Registry
	Sessions SessionService
	Verify   VerifyService
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	db *sql.DB,
	clock time2.Clock,
	metrics *metrics.Service,
	builder *endpoint.Builder,
	popups *popup.Registry,
	sessions SessionService,
	verifier VerifyService,
) *Server {
	return &Server{
		Config:   cfg,
		DB:       db,
		Clock:    clock,
		Metrics:  metrics,
		Endpoint: builder,
		Popups:   popups,
		Sessions: sessions,
		Verify:   verifier,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.DB != nil {
		log.Debug().Msg("Closing database connection")

		if err := s.DB.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			log.Error().Err(err).Msg("Failed to close database connection")
			errs = append(errs, err)
		}
	}

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
