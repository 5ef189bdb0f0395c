package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	dashboardhandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/dashboard"
	portalhandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/portal"
	"github.com/nexus-desk/nexus/internal/interfaces/http/middleware"
)

// OverviewRouteConfig covers the read-only views: dashboard and portal descriptor.
type OverviewRouteConfig struct {
	DashboardHandler     *dashboardhandlers.DashboardHandler
	PortalHandler        *portalhandlers.PortalHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupOverviewRoutes(api *gin.RouterGroup, config *OverviewRouteConfig) {
	perm := config.PermissionMiddleware

	api.GET("/dashboard",
		perm.RequirePermission(vo.ResourceDashboard, vo.ActionRead),
		config.DashboardHandler.GetDashboard)
	api.GET("/portal",
		perm.RequirePermission(vo.ResourcePortal, vo.ActionRead),
		config.PortalHandler.DescribePortal)
}
