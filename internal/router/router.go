package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	BookingCreated(c *ginext.Context)
	BookingUpdated(c *ginext.Context)
	BookingDeleted(c *ginext.Context)
	TriggerScan(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Booking lifecycle events
		api.POST("/bookings", h.BookingCreated)
		api.PUT("/bookings/:id", h.BookingUpdated)
		api.DELETE("/bookings/:id", h.BookingDeleted)

		// Out-of-band reminder scan (cron-ping)
		api.POST("/scans/:token", h.TriggerScan)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
