package middlewares

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KENOx7/qayib/session"
)

// CookieName is the session cookie set on login.
const CookieName = "qayib_session"

// Context keys set for downstream handlers after a successful gate.
const (
	CtxUserID   = "auth.user_id"
	CtxUsername = "auth.username"
	CtxRole     = "auth.role"
)

// RequireAdmin resolves the session cookie against the store and lets
// the request through only for role=admin. Missing cookie, unknown or
// expired session and wrong role all get the same 401 body.
func RequireAdmin(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
			}
			rec, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				log.Printf("session lookup failed: %v", err)
				return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "internal error"})
			}
			if rec == nil || rec.Role != "admin" {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
			}
			c.Set(CtxUserID, rec.UserID)
			c.Set(CtxUsername, rec.Username)
			c.Set(CtxRole, rec.Role)
			return next(c)
		}
	}
}
