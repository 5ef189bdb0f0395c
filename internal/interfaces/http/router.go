package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/interfaces/http/handlers/system"
	"github.com/nexus-desk/nexus/internal/interfaces/http/middleware"
	"github.com/nexus-desk/nexus/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes. Every /api route resolves the
// session from the clientId query parameter and rejects unknown portal
// tokens before any handler runs.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.CustomLogger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	systemHandler := system.NewHandler(c.cfg.Store.Backend)
	c.engine.GET("/health", systemHandler.HealthCheck)
	c.engine.GET("/version", systemHandler.Version)

	api := c.engine.Group("/api")
	api.Use(middleware.Session())
	api.Use(c.permissionMiddleware.RequirePortal())

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimiter,
		CreateRatePerMinute:  c.cfg.AI.TicketRatePerMinute,
	})
	routes.SetupClientRoutes(api, &routes.ClientRouteConfig{
		ClientHandler:        c.hdlrs.clientHandler,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupTeamRoutes(api, &routes.TeamRouteConfig{
		TeamHandler:          c.hdlrs.teamHandler,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupSettingRoutes(api, &routes.SettingRouteConfig{
		Handler:              c.hdlrs.settingHandler,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupOverviewRoutes(api, &routes.OverviewRouteConfig{
		DashboardHandler:     c.hdlrs.dashboardHandler,
		PortalHandler:        c.hdlrs.portalHandler,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupAssistantRoutes(api, &routes.AssistantRouteConfig{
		AssistantHandler:     c.hdlrs.assistantHandler,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimiter,
		ChatRatePerMinute:    c.cfg.AI.ChatRatePerMinute,
	})
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Run starts the HTTP server
func (c *Container) Run(addr string) error {
	return c.engine.Run(addr)
}
