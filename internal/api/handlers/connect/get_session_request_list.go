package connect

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/types"
	"github/kontos/connect/internal/util"
)

func GetSessionRequestListRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Connect.GET("/sessions/:id/requests", getSessionRequestListHandler(s))
}

func getSessionRequestListHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		requests, err := s.Sessions.ListRequests(ctx, c.Param("id"))
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to list session requests")
			return mapServiceError(err)
		}

		items := make([]*types.SessionRequestResponse, 0, len(requests))
		for _, req := range requests {
			items = append(items, toSessionRequestResponse(req))
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.SessionRequestListResponse{
			Requests: items,
		})
	}
}
