package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	assistanthandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/assistant"
	"github.com/nexus-desk/nexus/internal/interfaces/http/middleware"
)

type AssistantRouteConfig struct {
	AssistantHandler     *assistanthandlers.AssistantHandler
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
	ChatRatePerMinute    int
}

func SetupAssistantRoutes(api *gin.RouterGroup, config *AssistantRouteConfig) {
	conversations := api.Group("/assistant/conversations")
	conversations.Use(config.PermissionMiddleware.RequirePermission(vo.ResourceAssistant, vo.ActionChat))
	{
		conversations.POST("",
			config.RateLimiter.Limit("chat-start", config.ChatRatePerMinute),
			config.AssistantHandler.StartConversation)

		conversations.POST("/:id/messages",
			config.RateLimiter.Limit("chat", config.ChatRatePerMinute),
			config.AssistantHandler.SendMessage)
		conversations.POST("/:id/reset", config.AssistantHandler.ResetConversation)

		conversations.GET("/:id", config.AssistantHandler.GetConversation)
	}
}
