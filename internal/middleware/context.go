package middleware

// Context keys used to store request metadata.
const (
	ContextKeyRequestID  = "request_id"
	ContextKeySessionID  = "session_id"
	ContextKeyController = "form_controller"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "vr_session"
