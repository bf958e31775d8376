package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"
	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, bookingID string) error
}

type ScanTrigger interface {
	TriggerScan(ctx context.Context, token int) (int, error)
}

type Handler struct {
	bookingService BookingSvc
	scanTrigger    ScanTrigger
}

func NewHandler(bookingService BookingSvc, scanTrigger ScanTrigger) *Handler {
	return &Handler{
		bookingService: bookingService,
		scanTrigger:    scanTrigger,
	}
}

// BookingCreated handles the "booking created" lifecycle event.
func (h *Handler) BookingCreated(c *ginext.Context) {
	var req dto.BookingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if req.BookingID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing bookingId"})
		return
	}

	if err := h.bookingService.Create(c.Request.Context(), req.ToBooking()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.StatusResponse{Status: "created", BookingID: req.BookingID})
}

// BookingUpdated handles the "booking updated" lifecycle event. The id in the
// path wins over any id in the body.
func (h *Handler) BookingUpdated(c *ginext.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing booking id"})
		return
	}

	var req dto.BookingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking := req.ToBooking()
	booking.ID = id

	if err := h.bookingService.Update(c.Request.Context(), booking); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "updated", BookingID: id})
}

// BookingDeleted handles the "booking deleted" lifecycle event. Deleting an
// already-absent booking still reports success.
func (h *Handler) BookingDeleted(c *ginext.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing booking id"})
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "deleted", BookingID: id})
}

// TriggerScan runs an out-of-band reminder scan for one slot token. Used by
// external cron-pings.
func (h *Handler) TriggerScan(c *ginext.Context) {
	token, err := strconv.Atoi(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot token"})
		return
	}

	matched, err := h.scanTrigger.TriggerScan(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ScanResponse{Token: token, Matched: matched})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownSlot):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
