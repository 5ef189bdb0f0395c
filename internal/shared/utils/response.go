package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/errors"
)

// APIResponse is the envelope of every JSON answer.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo describes a failed request. For access_denied answers Details
// carries the path the caller should return to.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	SuccessResponse(c, http.StatusCreated, msg, data)
}

// ListSuccessResponse answers with one page of items. total counts every
// matching item, not just the page.
func ListSuccessResponse(c *gin.Context, items interface{}, total int64, p Pagination) {
	SuccessResponse(c, http.StatusOK, "", ListResponse{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: TotalPages(total, p.PageSize),
	})
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponse answers with a generic internal error carrying message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	writeError(c, statusCode, ErrorInfo{Type: string(errors.ErrorTypeInternal), Message: message})
}

// ErrorResponseWithError maps err onto its HTTP status. Binding failures are
// reported as validation errors; anything that is not an AppError becomes an
// opaque 500 so internals never leak.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(BindingError(err))
	if appErr == nil {
		ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		return
	}
	writeError(c, appErr.Code, ErrorInfo{
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

func writeError(c *gin.Context, statusCode int, info ErrorInfo) {
	c.JSON(statusCode, APIResponse{Success: false, Error: &info})
}
