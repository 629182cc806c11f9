package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler is the liveness probe. It only checks that the process can
// still reach its database within the configured timeout.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := checkManagementSecret(s, c); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer cancel()

		if err := s.DB.PingContext(ctx); err != nil {
			util.LogFromEchoContext(c).Warn().Err(err).Msg("Health check failed to ping database")
			return c.String(521, "Not healthy.")
		}

		return c.String(http.StatusOK, "OK.")
	}
}

func checkManagementSecret(s *api.Server, c echo.Context) error {
	if s.Config.Management.Secret == "" {
		return nil
	}

	if c.QueryParam("mgmt-secret") != s.Config.Management.Secret {
		return echo.ErrUnauthorized
	}

	return nil
}
