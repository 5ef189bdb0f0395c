package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	settinghandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/setting"
	"github.com/nexus-desk/nexus/internal/interfaces/http/middleware"
)

// SettingRouteConfig holds the configuration for setting routes
type SettingRouteConfig struct {
	Handler              *settinghandlers.SettingHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSettingRoutes configures the admin-only settings endpoints
func SetupSettingRoutes(api *gin.RouterGroup, config *SettingRouteConfig) {
	perm := config.PermissionMiddleware

	settings := api.Group("/settings")
	{
		settings.GET("",
			perm.RequirePermission(vo.ResourceSettings, vo.ActionRead),
			config.Handler.GetSettings)
		settings.PUT("",
			perm.RequirePermission(vo.ResourceSettings, vo.ActionUpdate),
			config.Handler.UpdateSettings)
	}
}
