package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/config"
)

func GetVersionRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/version", getVersionHandler(s))
}

func getVersionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := checkManagementSecret(s, c); err != nil {
			return err
		}

		return c.String(http.StatusOK, config.GetFormattedBuildArgs())
	}
}
