package connect

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/types"
	"github/kontos/connect/internal/util"
)

func PostSessionRequestRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Connect.POST("/sessions/:id/requests", postSessionRequestHandler(s))
}

// postSessionRequestHandler dispatches a session request to the wallet on an
// approved session.
func postSessionRequestHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSessionRequestPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		req, target, err := s.Sessions.CreateRequest(ctx, c.Param("id"), swag.StringValue(body.Method), body.Params)
		if err != nil {
			log.Debug().Err(err).Str("method", swag.StringValue(body.Method)).Msg("Failed to create session request")
			return mapServiceError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.SessionRequestCreatedResponse{
			Request: toSessionRequestResponse(req),
			Target:  toConnectTargetResponse(target),
		})
	}
}
