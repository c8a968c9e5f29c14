package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_menu/internal/events"
	"github.com/Skotchmaster/hotel_menu/internal/logging"
	"github.com/Skotchmaster/hotel_menu/internal/service"
	"github.com/Skotchmaster/hotel_menu/internal/transport"
)

type MenuHTTP struct {
	Svc    *service.MenuService
	Events events.Publisher
}

func (h *MenuHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.list")

	items, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_menu_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *MenuHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.create")

	var req transport.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_menu_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	item, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "create_menu_item_error", err, "All fields are required", "", "Server Error")
	}

	publish(c, h.Events, events.TopicMenu, item.ID, map[string]any{
		"type":    "menu_item_created",
		"id":      item.ID,
		"name":    item.Name,
		"section": item.Section,
		"price":   item.Price,
	})

	l.Info("create_menu_item_success", "id", item.ID)
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Menu item added successfully",
		"newItem": item,
	})
}

func (h *MenuHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.delete")

	var req transport.DeleteByIDRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("delete_menu_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or missing menu item ID.")
	}

	if err := h.Svc.Delete(ctx, req.ID); err != nil {
		return fail(l, "delete_menu_item_error", err,
			"Invalid or missing menu item ID.", "Menu item not found.", "Failed to delete menu item.")
	}

	publish(c, h.Events, events.TopicMenu, req.ID, map[string]any{
		"type": "menu_item_deleted",
		"id":   req.ID,
	})

	l.Info("delete_menu_item_success", "id", req.ID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Menu item deleted successfully."})
}

func (h *MenuHTTP) CheckName(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.check")

	var req transport.CheckNameRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("check_menu_item_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Dish name is required.")
	}

	exists, err := h.Svc.NameExists(ctx, req.Name)
	if err != nil {
		return fail(l, "check_menu_item_error", err, "Dish name is required.", "", "Failed to check menu item existence.")
	}
	return c.JSON(http.StatusOK, map[string]bool{"exists": exists})
}

func (h *MenuHTTP) Sections(c echo.Context) error {
	ctx := c.Request().Context()

	sections, err := h.Svc.Sections(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_sections_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}
	return c.JSON(http.StatusOK, sections)
}

func (h *MenuHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.search")

	q := strings.TrimSpace(c.QueryParam("q"))
	section := c.QueryParam("section")

	items, err := h.Svc.Search(ctx, q, section)
	if err != nil {
		l.Error("search_menu_error", "status", 500, "query", q, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	return c.JSON(http.StatusOK, items)
}
