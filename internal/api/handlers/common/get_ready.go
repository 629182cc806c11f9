package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/util"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler is the readiness probe. The server counts as ready once all
// components are initialized and the database answers a ping.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := checkManagementSecret(s, c); err != nil {
			return err
		}

		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ReadinessTimeout)
		defer cancel()

		if err := s.DB.PingContext(ctx); err != nil {
			util.LogFromEchoContext(c).Warn().Err(err).Msg("Readiness check failed to ping database")
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
