package connect

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/api/httperrors"
	"github/kontos/connect/internal/types"
	"github/kontos/connect/internal/util"
)

func PostSessionApprovalRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Connect.POST("/sessions/:id/approval", postSessionApprovalHandler(s))
}

// postSessionApprovalHandler is the wallet frontend's callback after the user
// decided on a pending connection.
func postSessionApprovalHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSessionApprovalPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		id := c.Param("id")

		if !swag.BoolValue(body.Approved) {
			sess, err := s.Sessions.RejectSession(ctx, id)
			if err != nil {
				log.Debug().Err(err).Msg("Failed to reject session")
				return mapServiceError(err)
			}

			return util.ValidateAndReturn(c, http.StatusOK, toSessionResponse(sess))
		}

		if body.ChainID == 0 || len(body.Accounts) == 0 {
			return httperrors.NewHTTPValidationError(
				http.StatusBadRequest,
				types.PublicHTTPErrorTypeGeneric,
				"chain_id and accounts are required for approval",
				[]*types.HTTPValidationErrorDetail{
					{
						Key:   swag.String("chain_id"),
						In:    swag.String("body"),
						Error: swag.String("required when approved"),
					},
					{
						Key:   swag.String("accounts"),
						In:    swag.String("body"),
						Error: swag.String("required when approved"),
					},
				},
			)
		}

		sess, err := s.Sessions.ApproveSession(ctx, id, int(body.ChainID), body.Accounts)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to approve session")
			return mapServiceError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, toSessionResponse(sess))
	}
}
