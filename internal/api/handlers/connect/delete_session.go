package connect

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/util"
)

func DeleteSessionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Connect.DELETE("/sessions/:id", deleteSessionHandler(s))
}

func deleteSessionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		sess, err := s.Sessions.DisconnectSession(ctx, c.Param("id"))
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to disconnect session")
			return mapServiceError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, toSessionResponse(sess))
	}
}
