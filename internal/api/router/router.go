package router

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/api/handlers"
	"github/kontos/connect/internal/api/httperrors"
	"github/kontos/connect/internal/api/middleware"
)

// Init wires the echo instance, middlewares and all route groups into the
// server.
func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.HidePort = true

	s.Echo.HTTPErrorHandler = httperrors.HandlerWithConfig(s.Config.Echo.HideInternalServerError)

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.Recover())
	}

	s.Echo.Use(echoMiddleware.RequestID())

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Skipper: echoMiddleware.DefaultSkipper,
			Level:   s.Config.Logger.RequestLevel,
		}))
	}

	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(echoMiddleware.CORS())
	}

	s.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "connect",
		Registerer: s.Metrics.Registry(),
	}))

	s.Router = &api.Router{
		Routes: nil, // will be populated by handlers.AttachAllRoutes(s)

		Root:         s.Echo.Group(""),
		Management:   s.Echo.Group("/-"),
		APIV1Connect: s.Echo.Group("/api/v1/connect"),
		APIV1Verify:  s.Echo.Group("/api/v1/verify"),
	}

	handlers.AttachAllRoutes(s)
}
