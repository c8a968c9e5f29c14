package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_menu/internal/session"
)

func NewSession(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]string{"sessionId": session.New()})
}
