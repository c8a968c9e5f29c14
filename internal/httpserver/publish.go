package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_menu/internal/events"
	"github.com/Skotchmaster/hotel_menu/internal/logging"
	"github.com/Skotchmaster/hotel_menu/internal/service"
)

const publishTimeout = 5 * time.Second

// publish never fails the request; delivery errors are only logged.
func publish(c echo.Context, p events.Publisher, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), publishTimeout)
	defer cancel()

	event["at"] = time.Now().UTC().Format(time.RFC3339)
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", topic, "type", event["type"], "error", err)
	}
}

// fail maps a service error onto an HTTP error and logs it the same way every
// handler does.
func fail(l *slog.Logger, event string, err error, msg400, msg404, msg500 string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(event, "status", 400, "reason", msg400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msg400)
	case errors.Is(err, service.ErrNotFound):
		l.Warn(event, "status", 404, "reason", msg404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, msg404)
	case errors.Is(err, service.ErrUnauthorized):
		l.Warn(event, "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password.")
	default:
		l.Error(event, "status", 500, "reason", msg500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msg500)
	}
}
