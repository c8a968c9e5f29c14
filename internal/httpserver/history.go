package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_menu/internal/events"
	"github.com/Skotchmaster/hotel_menu/internal/logging"
	"github.com/Skotchmaster/hotel_menu/internal/models"
	"github.com/Skotchmaster/hotel_menu/internal/service"
	"github.com/Skotchmaster/hotel_menu/internal/transport"
)

type HistoryHTTP struct {
	Svc    *service.HistoryService
	Events events.Publisher
}

func (h *HistoryHTTP) Archive(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "history.archive")

	var rec models.HistoryRecord
	if err := c.Bind(&rec); err != nil {
		l.Warn("archive_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid order data")
	}

	if err := h.Svc.Archive(ctx, &rec); err != nil {
		return fail(l, "archive_order_error", err, "Invalid order data", "", "Failed to save order to history")
	}

	publish(c, h.Events, events.TopicHistory, rec.SessionID, map[string]any{
		"type":      "order_archived",
		"orderId":   rec.ID,
		"sessionId": rec.SessionID,
	})

	l.Info("archive_order_success", "order_id", rec.ID)
	return c.JSON(http.StatusCreated, transport.MessageResponse{Message: "Order saved to history"})
}

func (h *HistoryHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "history.list")

	recs, err := h.Svc.ListBySession(ctx, c.QueryParam("sessionId"))
	if err != nil {
		return fail(l, "list_history_error", err, "Session ID is required.", "", "Failed to fetch order history")
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *HistoryHTTP) Clear(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "history.clear")

	sessionID := c.QueryParam("sessionId")
	n, err := h.Svc.ClearSession(ctx, sessionID)
	if err != nil {
		return fail(l, "clear_history_error", err,
			"Session ID is required.", "No order history found for the given session ID.", "Failed to clear order history.")
	}

	publish(c, h.Events, events.TopicHistory, sessionID, map[string]any{
		"type":      "history_cleared",
		"sessionId": sessionID,
		"removed":   n,
	})

	l.Info("clear_history_success", "removed", n)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Order history cleared successfully."})
}
