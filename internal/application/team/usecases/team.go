package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/team/dto"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/domain/team"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type AddMemberCommand struct {
	Session session.Session
	Name    string
	Email   string
	Role    string
	Status  string
}

type AddMemberUseCase struct {
	store  TeamStore
	guard  *access.Guard
	logger logger.Interface
}

func NewAddMemberUseCase(store TeamStore, guard *access.Guard, logger logger.Interface) *AddMemberUseCase {
	return &AddMemberUseCase{store: store, guard: guard, logger: logger}
}

func (uc *AddMemberUseCase) Execute(ctx context.Context, cmd AddMemberCommand) (*dto.MemberDTO, error) {
	uc.logger.Infow("executing add team member use case", "name", cmd.Name, "role", cmd.Role)

	if _, err := uc.guard.Authorize(cmd.Session, uc.store.Snapshot(), permvo.ResourceTeam, permvo.ActionCreate); err != nil {
		return nil, err
	}

	draft, err := team.NewMember(cmd.Name, cmd.Email, cmd.Role, cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	created, err := uc.store.AddTeamMember(ctx, draft)
	if err != nil {
		uc.logger.Errorw("failed to add team member", "error", err)
		return nil, err
	}

	uc.logger.Infow("team member added", "member_id", created.ID())
	return dto.ToMemberDTO(created), nil
}

type ListMembersQuery struct {
	Session session.Session
}

type ListMembersUseCase struct {
	store  TeamStore
	guard  *access.Guard
	logger logger.Interface
}

func NewListMembersUseCase(store TeamStore, guard *access.Guard, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{store: store, guard: guard, logger: logger}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) ([]*dto.MemberDTO, error) {
	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(query.Session, state, permvo.ResourceTeam, permvo.ActionRead); err != nil {
		return nil, err
	}
	return dto.ToMemberDTOList(state.Team), nil
}

type RemoveMemberCommand struct {
	Session  session.Session
	MemberID string
}

type RemoveMemberUseCase struct {
	store  TeamStore
	guard  *access.Guard
	logger logger.Interface
}

func NewRemoveMemberUseCase(store TeamStore, guard *access.Guard, logger logger.Interface) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{store: store, guard: guard, logger: logger}
}

func (uc *RemoveMemberUseCase) Execute(ctx context.Context, cmd RemoveMemberCommand) error {
	if cmd.MemberID == "" {
		return errors.NewValidationError("team member ID is required")
	}
	if _, err := uc.guard.Authorize(cmd.Session, uc.store.Snapshot(), permvo.ResourceTeam, permvo.ActionDelete); err != nil {
		return err
	}

	removed, err := uc.store.RemoveTeamMember(ctx, cmd.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to remove team member", "member_id", cmd.MemberID, "error", err)
		return err
	}
	if !removed {
		return errors.NewNotFoundError("team member not found", cmd.MemberID)
	}

	uc.logger.Infow("team member removed", "member_id", cmd.MemberID)
	return nil
}
