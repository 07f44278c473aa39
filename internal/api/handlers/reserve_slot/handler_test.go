package reserve_slot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-BookingService/internal/domain"
	"github.com/m04kA/SPA-BookingService/internal/service/reservations"
)

type mockService struct {
	reserveSlotFn func(ctx context.Context, bookingID, slotTime string) (*domain.Booking, error)
}

func (m *mockService) ReserveSlot(ctx context.Context, bookingID, slotTime string) (*domain.Booking, error) {
	return m.reserveSlotFn(ctx, bookingID, slotTime)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(service ReservationService) *mux.Router {
	r := mux.NewRouter()
	handler := NewHandler(service, nopLogger{})
	r.HandleFunc("/api/v1/bookings/{bookingId}/reserve", handler.Handle).Methods(http.MethodPost)
	return r
}

func TestHandle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service := &mockService{
			reserveSlotFn: func(ctx context.Context, bookingID, slotTime string) (*domain.Booking, error) {
				assert.Equal(t, "booking-1", bookingID)
				assert.Equal(t, "2025-06-03T10:00:00", slotTime)
				return &domain.Booking{ID: bookingID, InvoiceID: "inv-1", SlotTime: slotTime}, nil
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/booking-1/reserve",
			strings.NewReader(`{"slotTime": "2025-06-03T10:00:00"}`))
		rec := httptest.NewRecorder()
		newRouter(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "booking-1", resp.BookingID)
		assert.Equal(t, "inv-1", resp.InvoiceID)
	})

	t.Run("SlotRaceGivesConflict", func(t *testing.T) {
		service := &mockService{
			reserveSlotFn: func(ctx context.Context, bookingID, slotTime string) (*domain.Booking, error) {
				return nil, reservations.ErrSlotUnavailable
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/booking-1/reserve",
			strings.NewReader(`{"slotTime": "2025-06-03T10:00:00"}`))
		rec := httptest.NewRecorder()
		newRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("MalformedSlotTime", func(t *testing.T) {
		service := &mockService{
			reserveSlotFn: func(ctx context.Context, bookingID, slotTime string) (*domain.Booking, error) {
				t.Fatal("service must not be called for a malformed slot time")
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/booking-1/reserve",
			strings.NewReader(`{"slotTime": "10:00 tomorrow"}`))
		rec := httptest.NewRecorder()
		newRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		service := &mockService{}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/booking-1/reserve",
			strings.NewReader(`not json`))
		rec := httptest.NewRecorder()
		newRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		service := &mockService{
			reserveSlotFn: func(ctx context.Context, bookingID, slotTime string) (*domain.Booking, error) {
				return nil, errors.New("boom")
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/booking-1/reserve",
			strings.NewReader(`{"slotTime": "2025-06-03T10:00:00"}`))
		rec := httptest.NewRecorder()
		newRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
