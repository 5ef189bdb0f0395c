package http

import (
	clientUsecases "github.com/nexus-desk/nexus/internal/application/client/usecases"
	dashboardUsecases "github.com/nexus-desk/nexus/internal/application/dashboard/usecases"
	portalUsecases "github.com/nexus-desk/nexus/internal/application/portal/usecases"
	settingApp "github.com/nexus-desk/nexus/internal/application/setting"
	teamUsecases "github.com/nexus-desk/nexus/internal/application/team/usecases"
	ticketUsecases "github.com/nexus-desk/nexus/internal/application/ticket/usecases"
)

// allUseCases holds all use case instances used by the handlers.
type allUseCases struct {
	// Ticket
	createTicket *ticketUsecases.CreateTicketUseCase
	listTickets  *ticketUsecases.ListTicketsUseCase
	getTicket    *ticketUsecases.GetTicketUseCase
	changeStatus *ticketUsecases.ChangeStatusUseCase

	// Client
	createClient *clientUsecases.CreateClientUseCase
	listClients  *clientUsecases.ListClientsUseCase
	removeClient *clientUsecases.RemoveClientUseCase
	portalLink   *clientUsecases.PortalLinkUseCase
	inviteClient *clientUsecases.InviteClientUseCase

	// Team
	addMember    *teamUsecases.AddMemberUseCase
	listMembers  *teamUsecases.ListMembersUseCase
	removeMember *teamUsecases.RemoveMemberUseCase

	// Settings, dashboard and portal
	settingService *settingApp.Service
	getDashboard   *dashboardUsecases.GetDashboardUseCase
	describePortal *portalUsecases.DescribePortalUseCase
}

func (c *Container) initUseCases() {
	baseURL := c.cfg.Server.BaseURL

	c.ucs = &allUseCases{
		createTicket: ticketUsecases.NewCreateTicketUseCase(c.store, c.guard, c.svcs.analysis, c.log),
		listTickets:  ticketUsecases.NewListTicketsUseCase(c.store, c.guard, c.log),
		getTicket:    ticketUsecases.NewGetTicketUseCase(c.store, c.guard, c.log),
		changeStatus: ticketUsecases.NewChangeStatusUseCase(c.store, c.guard, c.log),

		createClient: clientUsecases.NewCreateClientUseCase(c.store, c.guard, c.log),
		listClients:  clientUsecases.NewListClientsUseCase(c.store, c.guard, c.log),
		removeClient: clientUsecases.NewRemoveClientUseCase(c.store, c.guard, c.log),
		portalLink:   clientUsecases.NewPortalLinkUseCase(c.store, c.guard, baseURL, c.log),
		inviteClient: clientUsecases.NewInviteClientUseCase(c.store, c.guard, c.svcs.invites, baseURL, c.log),

		addMember:    teamUsecases.NewAddMemberUseCase(c.store, c.guard, c.log),
		listMembers:  teamUsecases.NewListMembersUseCase(c.store, c.guard, c.log),
		removeMember: teamUsecases.NewRemoveMemberUseCase(c.store, c.guard, c.log),

		settingService: settingApp.NewService(c.store, c.guard, c.log),
		getDashboard:   dashboardUsecases.NewGetDashboardUseCase(c.store, c.guard, c.log),
		describePortal: portalUsecases.NewDescribePortalUseCase(c.store, c.guard, c.log),
	}
}
