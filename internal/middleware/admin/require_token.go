package adminmw

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_menu/internal/logging"
	"github.com/Skotchmaster/hotel_menu/internal/tokens"
)

const (
	CookieName = "adminToken"
	ContextKey = "admin"
)

func tokenFrom(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		if after, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
	}
	if ck, err := c.Cookie(CookieName); err == nil {
		return ck.Value
	}
	return ""
}

// RequireToken admits requests carrying an admin token issued by
// POST /admin/verify, either as a bearer token or in the adminToken cookie.
func RequireToken(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := logging.FromContext(c.Request().Context()).With("middleware", "admin.require_token")

			raw := tokenFrom(c)
			if raw == "" {
				l.Warn("admin_token_missing", "status", 401)
				return echo.NewHTTPError(http.StatusUnauthorized, "admin token required")
			}

			claims, err := tokens.AdminClaimsFromToken(raw, secret)
			if err != nil {
				reason := "invalid admin token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					reason = "admin token expired"
				}
				l.Warn("admin_token_rejected", "status", 401, "reason", reason, "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, reason)
			}

			c.Set(ContextKey, claims.Subject)
			return next(c)
		}
	}
}
