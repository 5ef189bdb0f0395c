package setting

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/application/setting/dto"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils"
)

type SettingsService interface {
	Get(ctx context.Context, sess session.Session) (*dto.SettingsDTO, error)
	Update(ctx context.Context, sess session.Session, request dto.UpdateSettingsRequest) (*dto.SettingsDTO, error)
}

type SettingHandler struct {
	service SettingsService
	logger  logger.Interface
}

func NewSettingHandler(service SettingsService, logger logger.Interface) *SettingHandler {
	return &SettingHandler{
		service: service,
		logger:  logger,
	}
}

// GetSettings handles GET /api/settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), s)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSettings handles PUT /api/settings
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), s, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings saved", result)
}
