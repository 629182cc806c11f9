package handlers

import (
	"github.com/labstack/echo/v4"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/api/handlers/common"
	"github/kontos/connect/internal/api/handlers/connect"
	"github/kontos/connect/internal/api/handlers/verify"
)

// AttachAllRoutes attaches all registered routes to the server's router.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		connect.DeleteSessionRoute(s),
		connect.GetRequestRoute(s),
		connect.GetSessionListRoute(s),
		connect.GetSessionRequestListRoute(s),
		connect.GetSessionRoute(s),
		connect.PostPairingRoute(s),
		connect.PostRequestResultRoute(s),
		connect.PostSessionApprovalRoute(s),
		connect.PostSessionRequestRoute(s),
		verify.PostVerifySignatureRoute(s),
	}
}
