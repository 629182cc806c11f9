package verify

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/types"
	"github/kontos/connect/internal/util"
)

func PostVerifySignatureRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Verify.POST("/signature", postVerifySignatureHandler(s))
}

// postVerifySignatureHandler verifies a personal_sign signature. Contract
// wallets (all Kontos accounts) are verified on-chain via ERC-1271, plain
// EOAs via key recovery.
func postVerifySignatureHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostVerifySignaturePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		result, err := s.Verify.VerifyPersonalSign(ctx, swag.StringValue(body.Address), []byte(swag.StringValue(body.Message)), swag.StringValue(body.Signature))
		if err != nil {
			log.Debug().Err(err).Msg("Failed to verify signature")
			return echo.NewHTTPError(http.StatusBadRequest, "unable to verify signature")
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.VerifySignatureResponse{
			Valid: swag.Bool(result.Valid),
			Kind:  swag.String(string(result.Kind)),
		})
	}
}
