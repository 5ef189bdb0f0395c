package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/application/team/dto"
	"github.com/nexus-desk/nexus/internal/domain/team"
)

type TeamStore interface {
	Snapshot() *store.State
	AddTeamMember(ctx context.Context, draft *team.Member) (*team.Member, error)
	RemoveTeamMember(ctx context.Context, memberID string) (bool, error)
}

type AddMemberExecutor interface {
	Execute(ctx context.Context, cmd AddMemberCommand) (*dto.MemberDTO, error)
}

type ListMembersExecutor interface {
	Execute(ctx context.Context, query ListMembersQuery) ([]*dto.MemberDTO, error)
}

type RemoveMemberExecutor interface {
	Execute(ctx context.Context, cmd RemoveMemberCommand) error
}
