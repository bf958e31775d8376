package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"
	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/handler/dto"
	hmocks "github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockScanTrigger, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	scanTrigger := hmocks.NewMockScanTrigger(t)

	h := NewHandler(bookingSvc, scanTrigger)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.BookingCreated)
		api.PUT("/bookings/:id", h.BookingUpdated)
		api.DELETE("/bookings/:id", h.BookingDeleted)
		api.POST("/scans/:token", h.TriggerScan)
	}

	return bookingSvc, scanTrigger, r
}

func eventBody(t *testing.T, id string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"bookingId":  id,
		"mainPerson": "Aditya",
		"checkIn":    "16 January 2021, 09:30 AM",
		"checkOut":   "18 January 2021, 09:30 AM",
	})
	require.NoError(t, err)
	return body
}

func TestHandler_BookingCreated_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(eventBody(t, "b1")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "created", resp.Status)
	assert.Equal(t, "b1", resp.BookingID)
}

func TestHandler_BookingCreated_MissingID(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"mainPerson":"Aditya","checkIn":"16 January 2021, 09:30 AM","checkOut":"18 January 2021, 09:30 AM"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookingCreated_BadJSON(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{"mainPerson":`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookingCreated_StoreError(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(eventBody(t, "b1")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_BookingUpdated_PathIDWins(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Update(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, b *domain.Booking) {
			assert.Equal(t, "path-id", b.ID)
		}).
		Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/path-id", bytes.NewReader(eventBody(t, "body-id")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_BookingDeleted_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Delete(mock.Anything, "b1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "deleted", resp.Status)
}

func TestHandler_TriggerScan_Success(t *testing.T) {
	_, scanTrigger, r := setupRouter(t)

	scanTrigger.EXPECT().TriggerScan(mock.Anything, 930).Return(2, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/scans/930", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 930, resp.Token)
	assert.Equal(t, 2, resp.Matched)
}

func TestHandler_TriggerScan_NonNumericToken(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/scans/morning", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_TriggerScan_UnknownSlot(t *testing.T) {
	_, scanTrigger, r := setupRouter(t)

	scanTrigger.EXPECT().TriggerScan(mock.Anything, 1100).Return(0, domain.ErrUnknownSlot)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/scans/1100", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
