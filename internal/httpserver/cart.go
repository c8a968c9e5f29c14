package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_menu/internal/events"
	"github.com/Skotchmaster/hotel_menu/internal/logging"
	"github.com/Skotchmaster/hotel_menu/internal/service"
	"github.com/Skotchmaster/hotel_menu/internal/transport"
)

type CartHTTP struct {
	Svc    *service.CartService
	Events events.Publisher
}

func (h *CartHTTP) AddLine(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_line")

	const msg400 = "Session ID, name, price, and quantity are required."

	var req transport.AddCartLineRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msg400)
	}

	line, err := h.Svc.AddLine(ctx, req)
	if err != nil {
		return fail(l, "add_to_cart_error", err, msg400, "", "Failed to add item to cart.")
	}

	publish(c, h.Events, events.TopicCart, line.SessionID, map[string]any{
		"type":      "cart_line_added",
		"sessionId": line.SessionID,
		"lineId":    line.ID,
		"name":      line.Name,
		"quantity":  line.Quantity,
	})

	l.Info("add_to_cart_success", "line_id", line.ID)
	return c.JSON(http.StatusCreated, map[string]any{
		"message":  "Item added to cart successfully",
		"cartItem": line,
	})
}

func (h *CartHTTP) ListLines(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.list_lines")

	lines, err := h.Svc.ListLines(ctx, c.QueryParam("sessionId"))
	if err != nil {
		return fail(l, "get_cart_error", err, "Session ID is required.", "", "Failed to fetch orders")
	}
	return c.JSON(http.StatusOK, lines)
}

func (h *CartHTTP) Summary(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.summary")

	sum, err := h.Svc.Summary(ctx, c.QueryParam("sessionId"))
	if err != nil {
		return fail(l, "cart_summary_error", err, "Session ID is required.", "", "Failed to fetch orders")
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *CartHTTP) RemoveLine(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_line")

	const msg400 = "Invalid or missing session ID or order ID."

	var req transport.RemoveCartLineRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("delete_one_from_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msg400)
	}

	if err := h.Svc.RemoveLine(ctx, req.SessionID, req.ID); err != nil {
		return fail(l, "delete_one_from_cart_error", err, msg400, "Order not found", "Failed to remove order")
	}

	publish(c, h.Events, events.TopicCart, req.SessionID, map[string]any{
		"type":      "cart_line_removed",
		"sessionId": req.SessionID,
		"lineId":    req.ID,
	})

	l.Info("delete_one_from_cart_success", "line_id", req.ID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Order removed successfully"})
}

func (h *CartHTTP) Clear(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	var req transport.SessionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("clear_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Session ID is required.")
	}
	if req.SessionID == "" {
		req.SessionID = c.QueryParam("sessionId")
	}

	n, err := h.Svc.ClearSession(ctx, req.SessionID)
	if err != nil {
		return fail(l, "clear_cart_error", err, "Session ID is required.", "", "Failed to clear cart.")
	}

	if n > 0 {
		publish(c, h.Events, events.TopicCart, req.SessionID, map[string]any{
			"type":      "cart_cleared",
			"sessionId": req.SessionID,
			"removed":   n,
		})
	}

	l.Info("clear_cart_success", "removed", n)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Cart cleared successfully."})
}
