package connect

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/util"
)

func GetSessionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Connect.GET("/sessions/:id", getSessionHandler(s))
}

func getSessionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		sess, err := s.Sessions.GetSession(ctx, c.Param("id"))
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to get session")
			return mapServiceError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, toSessionResponse(sess))
	}
}
