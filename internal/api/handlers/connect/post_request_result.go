package connect

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/connect/session"
	"github/kontos/connect/internal/types"
	"github/kontos/connect/internal/util"
)

func PostRequestResultRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Connect.POST("/requests/:id/result", postRequestResultHandler(s))
}

// postRequestResultHandler is the wallet frontend's callback once a session
// request finished. A user who closed the popup without answering is reported
// via user_rejected and abandons the request.
func postRequestResultHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostRequestResultPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		id := c.Param("id")

		var req *session.Request
		var err error

		switch {
		case body.UserRejected:
			req, err = s.Sessions.AbandonRequest(ctx, id)
		case body.Error != "":
			req, err = s.Sessions.FailRequest(ctx, id, body.Error)
		default:
			req, err = s.Sessions.ResolveRequest(ctx, id, body.Result)
		}
		if err != nil {
			log.Debug().Err(err).Str("request_id", id).Msg("Failed to finish session request")
			return mapServiceError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, toSessionRequestResponse(req))
	}
}
