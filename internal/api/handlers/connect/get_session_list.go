package connect

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/types"
	"github/kontos/connect/internal/util"
)

func GetSessionListRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Connect.GET("/sessions", getSessionListHandler(s))
}

func getSessionListHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var statuses []string
		if status := c.QueryParams()["status"]; len(status) > 0 {
			statuses = status
		}

		sessions, err := s.Sessions.ListSessions(ctx, statuses)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to list sessions")
			return mapServiceError(err)
		}

		items := make([]*types.SessionResponse, 0, len(sessions))
		for _, sess := range sessions {
			items = append(items, toSessionResponse(sess))
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.SessionListResponse{
			Sessions: items,
		})
	}
}
