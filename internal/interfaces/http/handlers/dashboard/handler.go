package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/application/dashboard/dto"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils"
)

type GetDashboardExecutor interface {
	Execute(ctx context.Context, s session.Session) (*dto.DashboardDTO, error)
}

type DashboardHandler struct {
	getDashboardUC GetDashboardExecutor
	logger         logger.Interface
}

func NewDashboardHandler(getDashboardUC GetDashboardExecutor, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		logger:         logger,
	}
}

// GetDashboard handles GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDashboardUC.Execute(c.Request.Context(), s)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
