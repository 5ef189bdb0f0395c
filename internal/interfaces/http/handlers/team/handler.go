package team

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/application/team/usecases"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils"
)

type AddMemberRequest struct {
	Name   string `json:"name" binding:"required,max=200"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role" binding:"max=100"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type TeamHandler struct {
	addMemberUC    usecases.AddMemberExecutor
	listMembersUC  usecases.ListMembersExecutor
	removeMemberUC usecases.RemoveMemberExecutor
	logger         logger.Interface
}

func NewTeamHandler(
	addMemberUC usecases.AddMemberExecutor,
	listMembersUC usecases.ListMembersExecutor,
	removeMemberUC usecases.RemoveMemberExecutor,
	logger logger.Interface,
) *TeamHandler {
	return &TeamHandler{
		addMemberUC:    addMemberUC,
		listMembersUC:  listMembersUC,
		removeMemberUC: removeMemberUC,
		logger:         logger,
	}
}

// AddMember handles POST /api/team
func (h *TeamHandler) AddMember(c *gin.Context) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add team member", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addMemberUC.Execute(c.Request.Context(), usecases.AddMemberCommand{
		Session: s,
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Status:  req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Team member added")
}

// ListMembers handles GET /api/team
func (h *TeamHandler) ListMembers(c *gin.Context) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listMembersUC.Execute(c.Request.Context(), usecases.ListMembersQuery{Session: s})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RemoveMember handles DELETE /api/team/:id
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	memberID, err := utils.ParseIDParam(c, "id", "team member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeMemberUC.Execute(c.Request.Context(), usecases.RemoveMemberCommand{
		Session:  s,
		MemberID: memberID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
