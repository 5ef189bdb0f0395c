package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	tickethandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/ticket"
	"github.com/nexus-desk/nexus/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
	CreateRatePerMinute  int
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	perm := config.PermissionMiddleware

	tickets := api.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts
		tickets.GET("",
			perm.RequirePermission(vo.ResourceTickets, vo.ActionRead),
			config.TicketHandler.ListTickets)
		// creation runs the classifier, so it shares the AI quota
		tickets.POST("",
			perm.RequirePermission(vo.ResourceTickets, vo.ActionCreate),
			config.RateLimiter.Limit("ticket", config.CreateRatePerMinute),
			config.TicketHandler.CreateTicket)

		tickets.PATCH("/:id/status",
			perm.RequirePermission(vo.ResourceTickets, vo.ActionUpdate),
			config.TicketHandler.ChangeStatus)

		tickets.GET("/:id",
			perm.RequirePermission(vo.ResourceTickets, vo.ActionRead),
			config.TicketHandler.GetTicket)
	}
}
