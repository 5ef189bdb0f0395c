// Package usecases describes what the current session sees when it opens
// the desk: its identity, header line and the operations it may use.
package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	clientdto "github.com/nexus-desk/nexus/internal/application/client/dto"
	"github.com/nexus-desk/nexus/internal/application/store"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

const portalHeaderSuffix = " Enterprise Portal"

type PortalDTO struct {
	Role         string               `json:"role"`
	AppName      string               `json:"app_name"`
	Header       string               `json:"header"`
	SupportEmail string               `json:"support_email"`
	Client       *clientdto.ClientDTO `json:"client,omitempty"`
	Capabilities []string             `json:"capabilities"`
}

type PortalStore interface {
	Snapshot() *store.State
}

type DescribePortalUseCase struct {
	store  PortalStore
	guard  *access.Guard
	logger logger.Interface
}

func NewDescribePortalUseCase(store PortalStore, guard *access.Guard, logger logger.Interface) *DescribePortalUseCase {
	return &DescribePortalUseCase{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

func (uc *DescribePortalUseCase) Execute(ctx context.Context, s session.Session) (*PortalDTO, error) {
	state := uc.store.Snapshot()
	active, err := uc.guard.Authorize(s, state, permvo.ResourcePortal, permvo.ActionRead)
	if err != nil {
		return nil, err
	}

	capabilities := uc.guard.Capabilities(s)
	names := make([]string, 0, len(capabilities))
	for _, c := range capabilities {
		names = append(names, c.String())
	}

	result := &PortalDTO{
		Role:         s.Role().String(),
		AppName:      state.Settings.AppName(),
		Header:       state.Settings.OrganizationName(),
		SupportEmail: state.Settings.SupportEmail(),
		Capabilities: names,
	}
	if active != nil {
		result.Client = clientdto.ToClientDTO(active)
		result.Header = active.Company() + portalHeaderSuffix
	}
	return result, nil
}
