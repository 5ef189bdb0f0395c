package usecases

import (
	"context"
	"net/url"
	"strings"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/domain/client"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

// PortalURL builds the link that opens the portal of one client.
func PortalURL(baseURL, clientID string) string {
	q := url.Values{}
	q.Set(constants.QueryParamClientID, clientID)
	return strings.TrimRight(baseURL, "/") + "/?" + q.Encode()
}

type PortalLinkQuery struct {
	Session  session.Session
	ClientID string
}

type PortalLinkResult struct {
	ClientID string `json:"client_id"`
	Email    string `json:"email"`
	URL      string `json:"url"`
}

type PortalLinkUseCase struct {
	store   ClientStore
	guard   *access.Guard
	baseURL string
	logger  logger.Interface
}

func NewPortalLinkUseCase(store ClientStore, guard *access.Guard, baseURL string, logger logger.Interface) *PortalLinkUseCase {
	return &PortalLinkUseCase{
		store:   store,
		guard:   guard,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (uc *PortalLinkUseCase) Execute(ctx context.Context, query PortalLinkQuery) (*PortalLinkResult, error) {
	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(query.Session, state, permvo.ResourceClients, permvo.ActionRead); err != nil {
		return nil, err
	}

	c, ok := client.Find(state.Clients, query.ClientID)
	if !ok {
		return nil, errors.NewNotFoundError("client not found", query.ClientID)
	}
	return &PortalLinkResult{
		ClientID: c.ID(),
		Email:    c.Email(),
		URL:      PortalURL(uc.baseURL, c.ID()),
	}, nil
}
