package usecases

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/dashboard/dto"
	"github.com/nexus-desk/nexus/internal/application/store"
	ticketdto "github.com/nexus-desk/nexus/internal/application/ticket/dto"
	"github.com/nexus-desk/nexus/internal/domain/client"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
	"github.com/nexus-desk/nexus/internal/shared/biztime"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

const (
	trendDays       = 7
	urgentListLimit = 3
)

type DashboardStore interface {
	Snapshot() *store.State
}

type GetDashboardUseCase struct {
	store  DashboardStore
	guard  *access.Guard
	now    func() time.Time
	logger logger.Interface
}

func NewGetDashboardUseCase(store DashboardStore, guard *access.Guard, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		store:  store,
		guard:  guard,
		now:    biztime.NowUTC,
		logger: logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, s session.Session) (*dto.DashboardDTO, error) {
	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(s, state, permvo.ResourceDashboard, permvo.ActionRead); err != nil {
		return nil, err
	}

	tickets := session.VisibleTickets(s, state.Tickets)

	result := &dto.DashboardDTO{
		Role:              s.Role().String(),
		Stats:             stats(tickets),
		PriorityBreakdown: priorityBreakdown(tickets),
		DailyTickets:      dailyCounts(tickets, uc.now()),
	}

	if s.IsAdmin() {
		clientCount := len(state.Clients)
		teamCount := len(state.Team)
		result.ClientCount = &clientCount
		result.TeamCount = &teamCount
		result.ClientHealth = clientHealth(state.Clients, tickets)
		result.UrgentTickets = urgentTickets(tickets, state.Clients)
	}

	return result, nil
}

func isUrgentUnresolved(t *ticket.Ticket) bool {
	return t.Priority().IsUrgent() && t.IsUnresolved()
}

func stats(tickets []*ticket.Ticket) dto.StatsDTO {
	st := dto.StatsDTO{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status() {
		case vo.StatusOpen:
			st.Open++
		case vo.StatusInProgress:
			st.InProgress++
		case vo.StatusResolved:
			st.Resolved++
		}
		if isUrgentUnresolved(t) {
			st.UrgentUnresolved++
		}
	}
	return st
}

// priorityBreakdown lists non-zero priorities from most to least severe.
func priorityBreakdown(tickets []*ticket.Ticket) []dto.PriorityShareDTO {
	counts := make(map[vo.Priority]int)
	for _, t := range tickets {
		counts[t.Priority()]++
	}

	order := []vo.Priority{vo.PriorityUrgent, vo.PriorityHigh, vo.PriorityMedium, vo.PriorityLow}
	shares := make([]dto.PriorityShareDTO, 0, len(order))
	for _, p := range order {
		n := counts[p]
		if n == 0 {
			continue
		}
		shares = append(shares, dto.PriorityShareDTO{
			Priority: p.String(),
			Count:    n,
			Percent:  percent(n, len(tickets)),
		})
	}
	return shares
}

func dailyCounts(tickets []*ticket.Ticket, now time.Time) []dto.DailyCountDTO {
	days := biztime.LastNDays(now, trendDays)
	index := make(map[string]int, len(days))
	counts := make([]dto.DailyCountDTO, len(days))
	for i, d := range days {
		index[d] = i
		counts[i].Date = d
	}
	for _, t := range tickets {
		if i, ok := index[biztime.FormatBizDate(t.CreatedAt())]; ok {
			counts[i].Count++
		}
	}
	return counts
}

// clientHealth ranks clients by unresolved urgent tickets, then by volume.
func clientHealth(clients []*client.Client, tickets []*ticket.Ticket) []dto.ClientHealthDTO {
	health := make([]dto.ClientHealthDTO, 0, len(clients))
	for _, c := range clients {
		h := dto.ClientHealthDTO{ClientID: c.ID(), Name: c.Name(), Company: c.Company()}
		for _, t := range tickets {
			if !t.BelongsTo(c.ID()) {
				continue
			}
			h.Total++
			switch t.Status() {
			case vo.StatusOpen:
				h.Open++
			case vo.StatusResolved:
				h.Resolved++
			}
			if isUrgentUnresolved(t) {
				h.Urgent++
			}
		}
		h.ResolutionRate = percent(h.Resolved, h.Total)
		health = append(health, h)
	}

	sort.SliceStable(health, func(i, j int) bool {
		if health[i].Urgent != health[j].Urgent {
			return health[i].Urgent > health[j].Urgent
		}
		return health[i].Total > health[j].Total
	})
	return health
}

func urgentTickets(tickets []*ticket.Ticket, clients []*client.Client) []*ticketdto.TicketDTO {
	urgent := make([]*ticket.Ticket, 0)
	for _, t := range tickets {
		if isUrgentUnresolved(t) {
			urgent = append(urgent, t)
		}
		if len(urgent) == urgentListLimit {
			break
		}
	}
	return ticketdto.ToTicketDTOList(urgent, clients)
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
