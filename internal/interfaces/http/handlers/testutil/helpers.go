// Package testutil drives handlers through gin test contexts with a
// resolved session, the way the session middleware would.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext builds a request context. A non-nil body is sent as JSON.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		raw, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func SetSession(c *gin.Context, s session.Session) {
	c.Set(constants.ContextKeySession, s)
}

// SetClientSession makes the request a portal request of clientID.
func SetClientSession(c *gin.Context, clientID string) {
	SetSession(c, session.ForClient(clientID))
}

func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func SetQueryParams(c *gin.Context, params map[string]string) {
	q := c.Request.URL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// APIResponse is utils.APIResponse with Data left undecoded.
type APIResponse struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data,omitempty"`
	Error   *utils.ErrorInfo `json:"error,omitempty"`
	Message string           `json:"message,omitempty"`
}

func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// ErrorType returns the error type of an error envelope, or "" when the
// body carries none.
func ErrorType(w *httptest.ResponseRecorder) string {
	var resp APIResponse
	if err := ParseResponse(w, &resp); err != nil || resp.Error == nil {
		return ""
	}
	return resp.Error.Type
}

func NewMockLogger() logger.Interface {
	return logger.NewNop()
}
