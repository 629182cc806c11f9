package connect

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/types"
	"github/kontos/connect/internal/util"
)

func PostPairingRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Connect.POST("/pairings", postPairingHandler(s))
}

func postPairingHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostPairingPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		sess, target, err := s.Sessions.CreateFromPairing(ctx, swag.StringValue(body.URI))
		if err != nil {
			log.Debug().Err(err).Msg("Failed to create session from pairing")
			return mapServiceError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.PairingResponse{
			Session: toSessionResponse(sess),
			Target:  toConnectTargetResponse(target),
		})
	}
}
