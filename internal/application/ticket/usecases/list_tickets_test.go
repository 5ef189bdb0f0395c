package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/application/testutil"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
	apperrors "github.com/nexus-desk/nexus/internal/shared/errors"
)

func addTicket(t *testing.T, s *store.Store, title, clientID string, priority vo.Priority) *ticket.Ticket {
	t.Helper()
	draft, err := ticket.NewTicket(title, title+" details", clientID, ticket.DefaultTriage(priority))
	require.NoError(t, err)
	created, err := s.AddTicket(context.Background(), draft)
	require.NoError(t, err)
	return created
}

func TestListTicketsUseCase_Scoping(t *testing.T) {
	s := testutil.Store(t, nil)
	addTicket(t, s, "Laptop battery", "c2", vo.PriorityLow)
	addTicket(t, s, "Email bounce", "c1", vo.PriorityHigh)
	uc := NewListTicketsUseCase(s, testutil.Guard(t), testutil.Logger())

	admin, err := uc.Execute(context.Background(), ListTicketsQuery{Session: session.Admin()})
	require.NoError(t, err)
	assert.Equal(t, 3, admin.Total)

	client, err := uc.Execute(context.Background(), ListTicketsQuery{Session: session.ForClient("c2")})
	require.NoError(t, err)
	require.Equal(t, 1, client.Total)
	assert.Equal(t, "Laptop battery", client.Tickets[0].Title)

	for _, dto := range client.Tickets {
		assert.Equal(t, "c2", dto.ClientID)
	}
}

func TestListTicketsUseCase_Filters(t *testing.T) {
	s := testutil.Store(t, nil)
	addTicket(t, s, "Laptop battery", "c2", vo.PriorityLow)
	addTicket(t, s, "Email bounce", "c1", vo.PriorityHigh)
	uc := NewListTicketsUseCase(s, testutil.Guard(t), testutil.Logger())

	tests := []struct {
		name   string
		query  ListTicketsQuery
		titles []string
	}{
		{
			name:   "search title case-insensitively",
			query:  ListTicketsQuery{Session: session.Admin(), Search: "EMAIL"},
			titles: []string{"Email bounce"},
		},
		{
			name:   "search description",
			query:  ListTicketsQuery{Session: session.Admin(), Search: "latency"},
			titles: []string{"Server downtime in US-EAST-1"},
		},
		{
			name:   "admin search matches company",
			query:  ListTicketsQuery{Session: session.Admin(), Search: "resistance"},
			titles: []string{"Laptop battery"},
		},
		{
			name:   "client search ignores company",
			query:  ListTicketsQuery{Session: session.ForClient("c2"), Search: "resistance"},
			titles: []string{},
		},
		{
			name:   "priority filter",
			query:  ListTicketsQuery{Session: session.Admin(), Priority: "URGENT"},
			titles: []string{"Server downtime in US-EAST-1"},
		},
		{
			name:   "status filter",
			query:  ListTicketsQuery{Session: session.Admin(), Status: "RESOLVED"},
			titles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.query)
			require.NoError(t, err)

			titles := make([]string, 0, len(result.Tickets))
			for _, dto := range result.Tickets {
				titles = append(titles, dto.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestListTicketsUseCase_InvalidFilter(t *testing.T) {
	uc := NewListTicketsUseCase(testutil.Store(t, nil), testutil.Guard(t), testutil.Logger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Session: session.Admin(), Status: "DONE"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestListTicketsUseCase_UnknownTokenIsDenied(t *testing.T) {
	uc := NewListTicketsUseCase(testutil.Store(t, nil), testutil.Guard(t), testutil.Logger())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{Session: session.ForClient("c999")})

	assert.Nil(t, result, "an unknown token never yields an empty list")
	require.True(t, apperrors.IsAccessDeniedError(err))
	assert.Equal(t, "/", apperrors.GetAppError(err).Details)
}

func TestListTicketsUseCase_OrphanedTicket(t *testing.T) {
	s := testutil.Store(t, nil)
	_, err := s.RemoveClient(context.Background(), "c1")
	require.NoError(t, err)
	uc := NewListTicketsUseCase(s, testutil.Guard(t), testutil.Logger())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{Session: session.Admin()})

	require.NoError(t, err)
	require.Len(t, result.Tickets, 1)
	assert.Equal(t, "Unknown Client", result.Tickets[0].ClientName)
}
