package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	Menu    *MenuHTTP
	Cart    *CartHTTP
	Orders  *OrderHTTP
	History *HistoryHTTP
	Admin   *AdminHTTP

	// AdminGuard, when set, protects credential replacement.
	AdminGuard echo.MiddlewareFunc
	// Ready reports whether backing stores are reachable.
	Ready func(ctx context.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready == nil {
			return c.NoContent(http.StatusOK)
		}
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := d.Ready(ctx); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "not ready")
		}
		return c.NoContent(http.StatusOK)
	})

	e.POST("/session", NewSession)

	e.GET("/", d.Menu.List)
	e.POST("/", d.Menu.Create)
	e.DELETE("/", d.Menu.Delete)
	e.POST("/check", d.Menu.CheckName)
	e.GET("/sections", d.Menu.Sections)
	e.GET("/search", d.Menu.Search)

	e.POST("/order", d.Cart.AddLine)
	e.GET("/orders", d.Cart.ListLines)
	e.GET("/orders/summary", d.Cart.Summary)
	e.DELETE("/orders", d.Cart.RemoveLine)
	e.DELETE("/orders/clear", d.Cart.Clear)

	e.POST("/place-order", d.Orders.Place)
	e.GET("/place-order", d.Orders.List)
	e.DELETE("/place-order/:orderId", d.Orders.Complete)
	e.POST("/place-order/:orderId/done", d.Orders.Done)

	e.GET("/admin", d.Admin.Get)
	e.POST("/admin/verify", d.Admin.Verify)
	if d.AdminGuard != nil {
		e.PUT("/admin", d.Admin.Replace, d.AdminGuard)
	} else {
		e.PUT("/admin", d.Admin.Replace)
	}

	e.POST("/order-history", d.History.Archive)
	e.GET("/order-history", d.History.List)
	e.DELETE("/order-history", d.History.Clear)
}
