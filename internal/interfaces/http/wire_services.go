package http

import (
	"time"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/analysis"
	"github.com/nexus-desk/nexus/internal/application/assistant"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
	"github.com/nexus-desk/nexus/internal/infrastructure/ai/gemini"
	"github.com/nexus-desk/nexus/internal/infrastructure/email"
	"github.com/nexus-desk/nexus/internal/infrastructure/permission"
	"github.com/nexus-desk/nexus/internal/infrastructure/ratelimit"
	"github.com/nexus-desk/nexus/internal/interfaces/http/middleware"
	"github.com/nexus-desk/nexus/internal/shared/services/markdown"
)

// services holds the application services shared by several use cases.
type services struct {
	analysis *analysis.Service
	chat     *assistant.ChatService
	invites  *email.SMTPEmailService
}

func (c *Container) initServices() error {
	enforcer, err := permission.NewEnforcer(c.log)
	if err != nil {
		return wrapInit("permission enforcer", err)
	}
	c.guard = access.NewGuard(enforcer, c.log)

	geminiClient := gemini.NewClient(c.cfg.AI.APIKey, c.cfg.AI.BaseURL, c.log.Named("gemini"))

	// without a key every classification would fail; go straight to the fallback
	var classifier ticket.Classifier
	if c.cfg.AI.APIKey != "" {
		classifier = geminiClient
	} else {
		c.log.Warnw("ai.api_key is empty, tickets will be created with the fallback analysis")
	}

	manager := assistant.NewManager(geminiClient, c.log.Named("assistant"),
		assistant.WithOwnerLimit(c.cfg.AI.ConversationsPerSession),
		assistant.WithIdleTTL(time.Duration(c.cfg.AI.ConversationIdleMinutes)*time.Minute))

	c.svcs = &services{
		analysis: analysis.NewService(classifier, c.cfg.AI.RequestTimeout(), c.log),
		chat:     assistant.NewChatService(manager, c.store, c.guard, markdown.NewRenderer(), c.log),
		invites:  email.NewSMTPEmailService(email.SMTPConfigFrom(c.cfg.Email), c.log),
	}

	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.guard, c.store, c.log)
	if c.redis != nil {
		c.rateLimiter = middleware.NewRateLimiter(ratelimit.NewRedisRateLimiter(c.redis), c.log)
	}
	return nil
}
