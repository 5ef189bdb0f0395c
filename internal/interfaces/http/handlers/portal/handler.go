package portal

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/application/portal/usecases"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils"
)

type DescribePortalExecutor interface {
	Execute(ctx context.Context, s session.Session) (*usecases.PortalDTO, error)
}

type PortalHandler struct {
	describePortalUC DescribePortalExecutor
	logger           logger.Interface
}

func NewPortalHandler(describePortalUC DescribePortalExecutor, logger logger.Interface) *PortalHandler {
	return &PortalHandler{
		describePortalUC: describePortalUC,
		logger:           logger,
	}
}

// DescribePortal handles GET /api/portal
func (h *PortalHandler) DescribePortal(c *gin.Context) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.describePortalUC.Execute(c.Request.Context(), s)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
