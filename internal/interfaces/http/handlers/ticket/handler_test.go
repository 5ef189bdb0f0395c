package ticket

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "github.com/nexus-desk/nexus/internal/application/ticket/dto"
	"github.com/nexus-desk/nexus/internal/application/ticket/usecases"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/interfaces/http/handlers/testutil"
	"github.com/nexus-desk/nexus/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	cmd    usecases.CreateTicketCommand
	result *usecases.CreateTicketResult
	err    error
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockListTicketsUC struct {
	query  usecases.ListTicketsQuery
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.query = query
	return m.result, m.err
}

type mockGetTicketUC struct {
	query  usecases.GetTicketQuery
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, query usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockChangeStatusUC struct {
	cmd    usecases.ChangeStatusCommand
	result *usecases.ChangeStatusResult
	err    error
}

func (m *mockChangeStatusUC) Execute(_ context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createTicketUC usecases.CreateTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	getTicketUC    usecases.GetTicketExecutor
	changeStatusUC usecases.ChangeStatusExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		deps.listTicketsUC,
		deps.getTicketUC,
		deps.changeStatusUC,
		testutil.NewMockLogger(),
	)
}

func sampleTicket(id string) *ticketdto.TicketDTO {
	return &ticketdto.TicketDTO{
		ID:         id,
		Title:      "VPN down",
		ClientID:   "cl_1",
		ClientName: "Acme Corp",
		Status:     "OPEN",
		Priority:   "HIGH",
		Category:   "Network",
		CreatedAt:  time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

// =====================================================================
// CreateTicket
// =====================================================================

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{
			Ticket:     sampleTicket("tk_1"),
			Sentiment:  "Frustrated",
			Classified: true,
		},
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{Title: "VPN down", Description: "Nobody can connect", ClientID: "cl_9"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetClientSession(c, "cl_1")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, session.ForClient("cl_1"), mockUC.cmd.Session)
	assert.Equal(t, "cl_9", mockUC.cmd.ClientID, "the use case decides whether to honour it")

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"sentiment":"Frustrated"`)
	assert.Contains(t, string(resp.Data), `"client_name":"Acme Corp"`)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]string
		details string
	}{
		{"missing title", map[string]string{"description": "no title"}, "title is required"},
		{"missing description", map[string]string{"title": "VPN down"}, "description is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockCreateTicketUC{}
			handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

			c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", tt.body)
			testutil.SetSession(c, session.Admin())

			handler.CreateTicket(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "validation_error", resp.Error.Type)
			assert.Contains(t, resp.Error.Details, tt.details)
			assert.Empty(t, mockUC.cmd.Title, "use case must not run")
		})
	}
}

func TestTicketHandler_CreateTicket_NoSession(t *testing.T) {
	handler := newTestTicketHandler(testDeps{createTicketUC: &mockCreateTicketUC{}})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", CreateTicketRequest{Title: "x"})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTicketHandler_CreateTicket_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"access denied", errors.NewAccessDeniedError("denied", "/"), http.StatusForbidden, "access_denied"},
		{"unknown client", errors.NewValidationError("client does not exist"), http.StatusBadRequest, "validation_error"},
		{"persistence", errors.NewInternalError("failed to persist state"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestTicketHandler(testDeps{createTicketUC: &mockCreateTicketUC{err: tt.err}})

			c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", CreateTicketRequest{Title: "VPN down", Description: "Nobody can connect"})
			testutil.SetSession(c, session.Admin())

			handler.CreateTicket(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantType, testutil.ErrorType(w))
		})
	}
}

// =====================================================================
// ListTickets
// =====================================================================

func TestTicketHandler_ListTickets_PassesFiltersAndPaginates(t *testing.T) {
	tickets := []*ticketdto.TicketDTO{sampleTicket("tk_3"), sampleTicket("tk_2"), sampleTicket("tk_1")}
	mockUC := &mockListTicketsUC{result: &usecases.ListTicketsResult{Tickets: tickets, Total: len(tickets)}}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetSession(c, session.Admin())
	testutil.SetQueryParams(c, map[string]string{
		"search":    "vpn",
		"status":    "OPEN",
		"priority":  "HIGH",
		"page":      "2",
		"page_size": "2",
	})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vpn", mockUC.query.Search)
	assert.Equal(t, "OPEN", mockUC.query.Status)
	assert.Equal(t, "HIGH", mockUC.query.Priority)
	assert.True(t, mockUC.query.Session.IsAdmin())

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"total":3`)
	assert.Contains(t, string(resp.Data), `"id":"tk_1"`)
	assert.NotContains(t, string(resp.Data), `"id":"tk_3"`)
}

func TestTicketHandler_ListTickets_PageBeyondEnd(t *testing.T) {
	mockUC := &mockListTicketsUC{result: &usecases.ListTicketsResult{Tickets: []*ticketdto.TicketDTO{sampleTicket("tk_1")}, Total: 1}}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetClientSession(c, "cl_1")
	testutil.SetQueryParams(c, map[string]string{"page": "5"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"items":[]`)
}

// =====================================================================
// GetTicket
// =====================================================================

func TestTicketHandler_GetTicket(t *testing.T) {
	mockUC := &mockGetTicketUC{result: sampleTicket("tk_1")}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/tk_1", nil)
	testutil.SetClientSession(c, "cl_1")
	testutil.SetURLParam(c, "id", "tk_1")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tk_1", mockUC.query.TicketID)
}

func TestTicketHandler_GetTicket_NotVisible(t *testing.T) {
	handler := newTestTicketHandler(testDeps{getTicketUC: &mockGetTicketUC{err: errors.NewNotFoundError("ticket not found")}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/tk_9", nil)
	testutil.SetClientSession(c, "cl_2")
	testutil.SetURLParam(c, "id", "tk_9")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_MissingID(t *testing.T) {
	handler := newTestTicketHandler(testDeps{getTicketUC: &mockGetTicketUC{}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/", nil)
	testutil.SetSession(c, session.Admin())

	handler.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// ChangeStatus
// =====================================================================

func TestTicketHandler_ChangeStatus_ExplicitStatus(t *testing.T) {
	mockUC := &mockChangeStatusUC{result: &usecases.ChangeStatusResult{TicketID: "tk_1", OldStatus: "OPEN", NewStatus: "CLOSED"}}
	handler := newTestTicketHandler(testDeps{changeStatusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/tk_1/status", ChangeStatusRequest{Status: "CLOSED"})
	testutil.SetSession(c, session.Admin())
	testutil.SetURLParam(c, "id", "tk_1")

	handler.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CLOSED", mockUC.cmd.Status)
	assert.Equal(t, "tk_1", mockUC.cmd.TicketID)
}

func TestTicketHandler_ChangeStatus_EmptyBodyAdvances(t *testing.T) {
	mockUC := &mockChangeStatusUC{result: &usecases.ChangeStatusResult{TicketID: "tk_1", OldStatus: "OPEN", NewStatus: "IN_PROGRESS"}}
	handler := newTestTicketHandler(testDeps{changeStatusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/tk_1/status", nil)
	testutil.SetSession(c, session.Admin())
	testutil.SetURLParam(c, "id", "tk_1")

	handler.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockUC.cmd.Status)
}

func TestTicketHandler_ChangeStatus_InvalidStatus(t *testing.T) {
	handler := newTestTicketHandler(testDeps{changeStatusUC: &mockChangeStatusUC{}})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/tk_1/status", map[string]string{"status": "DONE"})
	testutil.SetSession(c, session.Admin())
	testutil.SetURLParam(c, "id", "tk_1")

	handler.ChangeStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
