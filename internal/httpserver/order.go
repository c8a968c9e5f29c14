package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_menu/internal/events"
	"github.com/Skotchmaster/hotel_menu/internal/logging"
	"github.com/Skotchmaster/hotel_menu/internal/service"
	"github.com/Skotchmaster/hotel_menu/internal/transport"
)

type OrderHTTP struct {
	Svc    *service.OrderService
	Events events.Publisher
}

func (h *OrderHTTP) Place(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place")

	var req transport.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("place_order_error", "status", 400, "reason", "invalid subtotal, GST, or grand total values", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subtotal, GST, or grand total values")
	}

	order, err := h.Svc.PlaceOrder(ctx, req)
	if err != nil {
		return fail(l, "place_order_error", err, "Invalid order data", "", "Failed to place order")
	}

	publish(c, h.Events, events.TopicOrder, order.ID, map[string]any{
		"type":         "order_placed",
		"orderId":      order.ID,
		"serialNumber": order.SerialNumber,
		"sessionId":    order.SessionID,
		"grandTotal":   order.GrandTotal,
		"items":        len(order.Items),
	})

	l.Info("place_order_success", "order_id", order.ID, "serial", order.SerialNumber)
	return c.JSON(http.StatusCreated, transport.PlaceOrderResponse{
		Message:      "Order placed successfully",
		OrderID:      order.ID,
		SerialNumber: order.SerialNumber,
	})
}

func (h *OrderHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	orders, err := h.Svc.ListOrders(ctx, c.QueryParam("sessionId"))
	if err != nil {
		l.Error("list_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch orders")
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) Complete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.complete")

	id := c.Param("orderId")
	if err := h.Svc.CompleteOrder(ctx, id); err != nil {
		return fail(l, "complete_order_error", err, "Invalid order ID", "Order not found", "Failed to mark order as done")
	}

	publish(c, h.Events, events.TopicOrder, id, map[string]any{
		"type":    "order_completed",
		"orderId": id,
	})

	l.Info("complete_order_success", "order_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Order marked as done"})
}

// Done archives the order into history and then completes it.
func (h *OrderHTTP) Done(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.done")

	id := c.Param("orderId")
	rec, err := h.Svc.MarkDone(ctx, id)
	if err != nil {
		if rec != nil && !errors.Is(err, service.ErrNotFound) {
			l.Error("mark_done_partial", "status", 500, "order_id", id, "reason", "archived but not removed from ledger", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Order archived but could not be marked as done")
		}
		return fail(l, "mark_done_error", err, "Invalid order ID", "Order not found", "Failed to mark order as done")
	}

	publish(c, h.Events, events.TopicHistory, rec.SessionID, map[string]any{
		"type":      "order_archived",
		"orderId":   rec.ID,
		"sessionId": rec.SessionID,
	})
	publish(c, h.Events, events.TopicOrder, id, map[string]any{
		"type":    "order_completed",
		"orderId": id,
	})

	l.Info("mark_done_success", "order_id", id, "serial", rec.SerialNumber)
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Order marked as done",
		"order":   rec,
	})
}
