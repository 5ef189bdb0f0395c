package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-desk/nexus/internal/application/testutil"
	"github.com/nexus-desk/nexus/internal/domain/session"
	apperrors "github.com/nexus-desk/nexus/internal/shared/errors"
)

func TestAddMemberUseCase(t *testing.T) {
	tests := []struct {
		name       string
		cmd        AddMemberCommand
		wantRole   string
		wantStatus string
		wantErr    func(error) bool
	}{
		{
			name:       "defaults",
			cmd:        AddMemberCommand{Session: session.Admin(), Name: "Sam Park", Email: "sam@nexus.io"},
			wantRole:   "Agent",
			wantStatus: "active",
		},
		{
			name:       "explicit role and status",
			cmd:        AddMemberCommand{Session: session.Admin(), Name: "Sam Park", Email: "sam@nexus.io", Role: "Lead", Status: "INACTIVE"},
			wantRole:   "Lead",
			wantStatus: "inactive",
		},
		{
			name:    "bad status",
			cmd:     AddMemberCommand{Session: session.Admin(), Name: "Sam Park", Email: "sam@nexus.io", Status: "away"},
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "missing email",
			cmd:     AddMemberCommand{Session: session.Admin(), Name: "Sam Park"},
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "client session",
			cmd:     AddMemberCommand{Session: session.ForClient("c1"), Name: "Sam Park", Email: "sam@nexus.io"},
			wantErr: apperrors.IsForbiddenError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.Store(t, nil)
			uc := NewAddMemberUseCase(s, testutil.Guard(t), testutil.Logger())

			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error %v", err)
				assert.Len(t, s.Snapshot().Team, 2)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "tm_1", result.ID)
			assert.Equal(t, tt.wantRole, result.Role)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, "tm_1", s.Snapshot().Team[2].ID())
		})
	}
}

func TestListAndRemoveMembers(t *testing.T) {
	s := testutil.Store(t, nil)
	guard := testutil.Guard(t)
	list := NewListMembersUseCase(s, guard, testutil.Logger())
	remove := NewRemoveMemberUseCase(s, guard, testutil.Logger())

	members, err := list.Execute(context.Background(), ListMembersQuery{Session: session.Admin()})
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Alex Rivera", members[0].Name)

	_, err = list.Execute(context.Background(), ListMembersQuery{Session: session.ForClient("c1")})
	assert.True(t, apperrors.IsForbiddenError(err))

	require.NoError(t, remove.Execute(context.Background(), RemoveMemberCommand{Session: session.Admin(), MemberID: "t1"}))
	assert.True(t, apperrors.IsNotFoundError(remove.Execute(context.Background(), RemoveMemberCommand{Session: session.Admin(), MemberID: "t1"})))

	members, err = list.Execute(context.Background(), ListMembersQuery{Session: session.Admin()})
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "t2", members[0].ID)
}
