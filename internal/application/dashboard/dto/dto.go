package dto

import ticketdto "github.com/nexus-desk/nexus/internal/application/ticket/dto"

type StatsDTO struct {
	Total            int `json:"total"`
	Open             int `json:"open"`
	InProgress       int `json:"in_progress"`
	Resolved         int `json:"resolved"`
	UrgentUnresolved int `json:"urgent_unresolved"`
}

type PriorityShareDTO struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
	Percent  int    `json:"percent"`
}

type DailyCountDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ClientHealthDTO struct {
	ClientID       string `json:"client_id"`
	Name           string `json:"name"`
	Company        string `json:"company"`
	Total          int    `json:"total"`
	Open           int    `json:"open"`
	Resolved       int    `json:"resolved"`
	Urgent         int    `json:"urgent"`
	ResolutionRate int    `json:"resolution_rate"`
}

// DashboardDTO is scoped to the session. The admin-only fields are omitted
// for client sessions.
type DashboardDTO struct {
	Role              string                 `json:"role"`
	Stats             StatsDTO               `json:"stats"`
	PriorityBreakdown []PriorityShareDTO     `json:"priority_breakdown"`
	DailyTickets      []DailyCountDTO        `json:"daily_tickets"`
	ClientHealth      []ClientHealthDTO      `json:"client_health,omitempty"`
	UrgentTickets     []*ticketdto.TicketDTO `json:"urgent_tickets,omitempty"`
	ClientCount       *int                   `json:"client_count,omitempty"`
	TeamCount         *int                   `json:"team_count,omitempty"`
}
