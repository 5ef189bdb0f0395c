package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	clienthandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/client"
	"github.com/nexus-desk/nexus/internal/interfaces/http/middleware"
)

type ClientRouteConfig struct {
	ClientHandler        *clienthandlers.ClientHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupClientRoutes(api *gin.RouterGroup, config *ClientRouteConfig) {
	perm := config.PermissionMiddleware

	clients := api.Group("/clients")
	{
		clients.GET("",
			perm.RequirePermission(vo.ResourceClients, vo.ActionRead),
			config.ClientHandler.ListClients)
		clients.POST("",
			perm.RequirePermission(vo.ResourceClients, vo.ActionCreate),
			config.ClientHandler.CreateClient)

		clients.GET("/:id/portal-link",
			perm.RequirePermission(vo.ResourceClients, vo.ActionRead),
			config.ClientHandler.PortalLink)
		clients.POST("/:id/invite",
			perm.RequirePermission(vo.ResourceClients, vo.ActionInvite),
			config.ClientHandler.InviteClient)

		clients.DELETE("/:id",
			perm.RequirePermission(vo.ResourceClients, vo.ActionDelete),
			config.ClientHandler.RemoveClient)
	}
}
