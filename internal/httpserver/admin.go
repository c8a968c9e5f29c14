package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_menu/internal/logging"
	adminmw "github.com/Skotchmaster/hotel_menu/internal/middleware/admin"
	"github.com/Skotchmaster/hotel_menu/internal/service"
	"github.com/Skotchmaster/hotel_menu/internal/transport"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.get")

	cred, err := h.Svc.Get(ctx)
	if err != nil {
		return fail(l, "get_admin_error", err, "", "Admin credentials not found.", "Failed to fetch admin credentials.")
	}
	return c.JSON(http.StatusOK, cred)
}

func (h *AdminHTTP) Verify(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.verify")

	const msg400 = "Username and password are required."

	var req transport.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("verify_admin_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msg400)
	}

	v, err := h.Svc.Verify(ctx, req.Username, req.Password)
	if err != nil {
		return fail(l, "verify_admin_error", err, msg400, "Admin credentials not found.", "Internal server error.")
	}

	resp := transport.VerifyResponse{Message: "Credentials verified successfully."}
	if v.Token != "" {
		resp.Token = v.Token
		resp.ExpiresAt = v.ExpiresAt.Unix()
		c.SetCookie(&http.Cookie{
			Name:     adminmw.CookieName,
			Value:    v.Token,
			Path:     "/",
			Expires:  v.ExpiresAt,
			HttpOnly: true,
			Secure:   c.Scheme() == "https",
			SameSite: http.SameSiteLaxMode,
		})
	}

	l.Info("verify_admin_success")
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHTTP) Replace(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.replace")

	const msg400 = "Username and password are required."

	var req transport.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("replace_admin_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msg400)
	}

	if _, err := h.Svc.Replace(ctx, req.Username, req.Password); err != nil {
		return fail(l, "replace_admin_error", err, msg400, "", "Failed to update admin credentials.")
	}

	l.Info("replace_admin_success")
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Admin credentials updated successfully."})
}
