package connect

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/util"
)

func GetRequestRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Connect.GET("/requests/:id", getRequestHandler(s))
}

func getRequestHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, err := s.Sessions.GetRequest(ctx, c.Param("id"))
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to get session request")
			return mapServiceError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, toSessionRequestResponse(req))
	}
}
