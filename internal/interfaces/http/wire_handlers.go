package http

import (
	assistantHandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/assistant"
	clientHandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/client"
	"github.com/nexus-desk/nexus/internal/interfaces/http/handlers/common"
	dashboardHandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/dashboard"
	portalHandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/portal"
	settingHandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/setting"
	teamHandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/team"
	ticketHandlers "github.com/nexus-desk/nexus/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	ticketHandler    *ticketHandlers.TicketHandler
	clientHandler    *clientHandlers.ClientHandler
	teamHandler      *teamHandlers.TeamHandler
	settingHandler   *settingHandlers.SettingHandler
	dashboardHandler *dashboardHandlers.DashboardHandler
	portalHandler    *portalHandlers.PortalHandler
	assistantHandler *assistantHandlers.AssistantHandler
}

func (c *Container) initHandlers() {
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicket, ucs.listTickets, ucs.getTicket, ucs.changeStatus, c.log),
		clientHandler: clientHandlers.NewClientHandler(
			ucs.createClient, ucs.listClients, ucs.removeClient, ucs.portalLink, ucs.inviteClient, c.log),
		teamHandler: teamHandlers.NewTeamHandler(
			ucs.addMember, ucs.listMembers, ucs.removeMember, c.log),
		settingHandler:   settingHandlers.NewSettingHandler(ucs.settingService, c.log),
		dashboardHandler: dashboardHandlers.NewDashboardHandler(ucs.getDashboard, c.log),
		portalHandler:    portalHandlers.NewPortalHandler(ucs.describePortal, c.log),
		assistantHandler: assistantHandlers.NewAssistantHandler(
			c.svcs.chat, common.NewEventStreamer(c.log), c.log),
	}
}
