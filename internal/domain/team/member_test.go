package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedvo "github.com/nexus-desk/nexus/internal/domain/shared/valueobjects"
)

func TestNewMember_Defaults(t *testing.T) {
	m, err := NewMember("Jordan Lee", "jordan@nexus.io", "", "")
	require.NoError(t, err)

	assert.Equal(t, DefaultRole, m.Role())
	assert.Equal(t, StatusActive, m.Status())
	assert.True(t, m.IsActive())
}

func TestNewMember_Validation(t *testing.T) {
	tests := []struct {
		name    string
		member  [4]string
		wantErr error
		anyErr  bool
	}{
		{name: "missing name", member: [4]string{"", "a@nexus.io", "", ""}, wantErr: ErrNameRequired},
		{name: "missing email", member: [4]string{"Alex", "", "", ""}, wantErr: sharedvo.ErrEmailRequired},
		{name: "bad status", member: [4]string{"Alex", "a@nexus.io", "Admin", "away"}, anyErr: true},
		{name: "status is case-insensitive", member: [4]string{"Alex", "a@nexus.io", "Admin", "INACTIVE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMember(tt.member[0], tt.member[1], tt.member[2], tt.member[3])
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestMember_WithIdentity(t *testing.T) {
	draft, err := NewMember("Alex Rivera", "alex@nexus.io", "Admin", "active")
	require.NoError(t, err)

	stored, err := draft.WithIdentity("tm_1")
	require.NoError(t, err)
	assert.Equal(t, "tm_1", stored.ID())
	assert.Empty(t, draft.ID())

	_, err = stored.WithIdentity("tm_2")
	assert.ErrorIs(t, err, ErrIdentityAlreadySet)
}
