package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/vacation-recommendations/web/internal/service"
	"github.com/octobees/vacation-recommendations/web/internal/session"
)

// Session binds the visitor's FormController to the request, creating a new
// session when the cookie is missing, tampered with or expired. A cookie past
// half its lifetime is re-issued, so only inactivity ends a session.
func Session(tokens *session.TokenManager, store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				if id, issuedAt, err := tokens.Parse(cookie.Value); err == nil {
					if ctrl, ok := store.Get(id); ok {
						if tokens.NeedsRenewal(issuedAt) {
							// The current cookie stays valid, so a failed renewal is retried next time.
							if token, err := tokens.Issue(id); err == nil {
								setSessionCookie(c, tokens, token)
							}
						}
						c.Set(ContextKeySessionID, id)
						c.Set(ContextKeyController, ctrl)
						return next(c)
					}
				}
			}

			id, ctrl := store.Create()
			token, err := tokens.Issue(id)
			if err != nil {
				store.Delete(id)
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "unable to start session"})
			}

			setSessionCookie(c, tokens, token)
			c.Set(ContextKeySessionID, id)
			c.Set(ContextKeyController, ctrl)

			return next(c)
		}
	}
}

func setSessionCookie(c echo.Context, tokens *session.TokenManager, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ControllerFromContext returns the FormController bound by Session.
func ControllerFromContext(c echo.Context) *service.FormController {
	if ctrl, ok := c.Get(ContextKeyController).(*service.FormController); ok {
		return ctrl
	}
	return nil
}
