package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
)

func TestNewTicket_Validation(t *testing.T) {
	triage := Triage{Priority: vo.PriorityHigh, Category: "Network"}
	const desc = "Tunnel drops every 5 minutes"

	tests := []struct {
		name        string
		title       string
		description string
		clientID    string
		triage      Triage
		wantErr     error
	}{
		{name: "valid", title: "VPN down", description: desc, clientID: "cl_1", triage: triage},
		{name: "blank title", title: "   ", description: desc, clientID: "cl_1", triage: triage, wantErr: ErrTitleRequired},
		{name: "title too long", title: strings.Repeat("x", MaxTitleLength+1), description: desc, clientID: "cl_1", triage: triage, wantErr: ErrTitleTooLong},
		{name: "multibyte title at limit", title: strings.Repeat("ü", MaxTitleLength), description: desc, clientID: "cl_1", triage: triage},
		{name: "multibyte title over limit", title: strings.Repeat("ü", MaxTitleLength+1), description: desc, clientID: "cl_1", triage: triage, wantErr: ErrTitleTooLong},
		{name: "missing description", title: "VPN down", clientID: "cl_1", triage: triage, wantErr: ErrDescriptionRequired},
		{name: "blank description", title: "VPN down", description: " \n\t ", clientID: "cl_1", triage: triage, wantErr: ErrDescriptionRequired},
		{name: "description too long", title: "VPN down", description: strings.Repeat("x", MaxDescriptionLength+1), clientID: "cl_1", triage: triage, wantErr: ErrDescriptionTooLong},
		{name: "multibyte description at limit", title: "VPN down", description: strings.Repeat("日", MaxDescriptionLength), clientID: "cl_1", triage: triage},
		{name: "missing client", title: "VPN down", description: desc, triage: triage, wantErr: ErrClientRequired},
		{name: "invalid priority", title: "VPN down", description: desc, clientID: "cl_1", triage: Triage{Priority: "CRITICAL"}, wantErr: ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicket(tt.title, tt.description, tt.clientID, tt.triage)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusOpen, got.Status())
			assert.Empty(t, got.ID())
			assert.True(t, got.CreatedAt().IsZero())
		})
	}
}

func TestNewTicket_DefaultsCategory(t *testing.T) {
	got, err := NewTicket("Printer jam", "Tray 2 is stuck", "cl_1", DefaultTriage(vo.PriorityLow))
	require.NoError(t, err)
	assert.Equal(t, DefaultCategory, got.Category())
	assert.Empty(t, got.AIAnalysis())
}

func TestTicket_WithIdentity(t *testing.T) {
	draft, err := NewTicket("VPN down", "Tunnel drops every 5 minutes", "cl_1", FallbackAnalysis().Triage())
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	stored, err := draft.WithIdentity("tk_abc", now)
	require.NoError(t, err)

	assert.Equal(t, "tk_abc", stored.ID())
	assert.Equal(t, time.UTC, stored.CreatedAt().Location())
	assert.Empty(t, draft.ID(), "draft must stay untouched")

	_, err = stored.WithIdentity("tk_other", now)
	assert.ErrorIs(t, err, ErrIdentityAlreadySet)

	_, err = draft.WithIdentity("", now)
	assert.ErrorIs(t, err, ErrIDRequired)
}

func TestTicket_WithStatus_CopyOnWrite(t *testing.T) {
	original, err := ReconstructTicket("tk1", "Server downtime", "", "c1", nil,
		vo.StatusOpen, vo.PriorityUrgent, "Infrastructure", time.Now(), "")
	require.NoError(t, err)

	updated, err := original.WithStatus(vo.StatusResolved)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusResolved, updated.Status())
	assert.Equal(t, vo.StatusOpen, original.Status())
	assert.Equal(t, original.Priority(), updated.Priority())
	assert.Equal(t, original.CreatedAt(), updated.CreatedAt())

	_, err = original.WithStatus("DONE")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTicket_Matches(t *testing.T) {
	tk, err := ReconstructTicket("tk1", "Server downtime in US-EAST-1", "Production cluster is unresponsive", "c1", nil,
		vo.StatusOpen, vo.PriorityUrgent, "Infrastructure", time.Now(), "")
	require.NoError(t, err)

	assert.True(t, tk.Matches("us-east"))
	assert.True(t, tk.Matches("CLUSTER"))
	assert.True(t, tk.Matches(""))
	assert.False(t, tk.Matches("billing"))
}

func TestTicket_AssignedToIsCopied(t *testing.T) {
	assignee := "t1"
	tk, err := ReconstructTicket("tk1", "Title", "", "c1", &assignee,
		vo.StatusOpen, vo.PriorityLow, "General", time.Now(), "")
	require.NoError(t, err)

	got := tk.AssignedTo()
	require.NotNil(t, got)
	*got = "t2"
	assert.Equal(t, "t1", *tk.AssignedTo())
}

func TestFallbackAnalysis(t *testing.T) {
	fb := FallbackAnalysis()

	assert.Equal(t, vo.PriorityMedium, fb.Priority)
	assert.Equal(t, "Uncategorized", fb.Category)
	assert.Equal(t, "Analysis failed, please review manually.", fb.Summary)
	assert.Equal(t, "Unknown", fb.Sentiment)
	assert.True(t, fb.IsFallback())
}
