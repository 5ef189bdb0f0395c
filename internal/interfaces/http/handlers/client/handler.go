package client

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/application/client/usecases"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils"
)

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Company string `json:"company" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
}

type ClientHandler struct {
	createClientUC usecases.CreateClientExecutor
	listClientsUC  usecases.ListClientsExecutor
	removeClientUC usecases.RemoveClientExecutor
	portalLinkUC   usecases.PortalLinkExecutor
	inviteClientUC usecases.InviteClientExecutor
	logger         logger.Interface
}

func NewClientHandler(
	createClientUC usecases.CreateClientExecutor,
	listClientsUC usecases.ListClientsExecutor,
	removeClientUC usecases.RemoveClientExecutor,
	portalLinkUC usecases.PortalLinkExecutor,
	inviteClientUC usecases.InviteClientExecutor,
	logger logger.Interface,
) *ClientHandler {
	return &ClientHandler{
		createClientUC: createClientUC,
		listClientsUC:  listClientsUC,
		removeClientUC: removeClientUC,
		portalLinkUC:   portalLinkUC,
		inviteClientUC: inviteClientUC,
		logger:         logger,
	}
}

// CreateClient handles POST /api/clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createClientUC.Execute(c.Request.Context(), usecases.CreateClientCommand{
		Session: s,
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// ListClients handles GET /api/clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listClientsUC.Execute(c.Request.Context(), usecases.ListClientsQuery{Session: s})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RemoveClient handles DELETE /api/clients/:id
func (h *ClientHandler) RemoveClient(c *gin.Context) {
	s, clientID, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	result, err := h.removeClientUC.Execute(c.Request.Context(), usecases.RemoveClientCommand{
		Session:  s,
		ClientID: clientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client removed", result)
}

// PortalLink handles GET /api/clients/:id/portal-link
func (h *ClientHandler) PortalLink(c *gin.Context) {
	s, clientID, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	result, err := h.portalLinkUC.Execute(c.Request.Context(), usecases.PortalLinkQuery{
		Session:  s,
		ClientID: clientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// InviteClient handles POST /api/clients/:id/invite
func (h *ClientHandler) InviteClient(c *gin.Context) {
	s, clientID, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	result, err := h.inviteClientUC.Execute(c.Request.Context(), usecases.InviteClientCommand{
		Session:  s,
		ClientID: clientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Portal invitation sent", result)
}

func (h *ClientHandler) sessionAndID(c *gin.Context) (s session.Session, clientID string, ok bool) {
	sess, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return s, "", false
	}
	clientID, err = utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return s, "", false
	}
	return sess, clientID, true
}
