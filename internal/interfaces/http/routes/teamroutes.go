package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	teamhandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/team"
	"github.com/nexus-desk/nexus/internal/interfaces/http/middleware"
)

type TeamRouteConfig struct {
	TeamHandler          *teamhandlers.TeamHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTeamRoutes(api *gin.RouterGroup, config *TeamRouteConfig) {
	perm := config.PermissionMiddleware

	team := api.Group("/team")
	{
		team.GET("",
			perm.RequirePermission(vo.ResourceTeam, vo.ActionRead),
			config.TeamHandler.ListMembers)
		team.POST("",
			perm.RequirePermission(vo.ResourceTeam, vo.ActionCreate),
			config.TeamHandler.AddMember)
		team.DELETE("/:id",
			perm.RequirePermission(vo.ResourceTeam, vo.ActionDelete),
			config.TeamHandler.RemoveMember)
	}
}
