// Package constants holds names shared between the HTTP layer, the
// application services and the CLI.
package constants

// Deployment environments accepted by --env.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// QueryParamClientID carries the portal access token.
const QueryParamClientID = "clientId"

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// gin context keys
const (
	ContextKeySession   = "session"
	ContextKeyClient    = "portal_client"
	ContextKeyRequestID = "request_id"
)

const (
	// AdminEntryPath is where a denied portal visitor is sent back to.
	AdminEntryPath = "/"

	// UnknownClientName is shown for tickets whose client was removed.
	UnknownClientName = "Unknown Client"
)

const (
	ErrMsgInternalServerError = "Something went wrong on our side"
	ErrMsgAccessDenied        = "This portal link does not match any client"
	ErrMsgAdminOnly           = "Only administrators can do this"
)
