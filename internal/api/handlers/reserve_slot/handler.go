package reserve_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BookingService/internal/api/handlers"
	"github.com/m04kA/SPA-BookingService/internal/domain"
	"github.com/m04kA/SPA-BookingService/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotTime    = "некорректный формат времени слота, ожидается YYYY-MM-DDTHH:MM:SS"
	msgMissingSlotTime    = "отсутствует время слота"
	msgSlotUnavailable    = "выбранный временной слот уже занят"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reserve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	var req ReserveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reserve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Слот идет upstream'у как строка, поэтому формат проверяем здесь
	if req.SlotTime != "" {
		if _, err := time.Parse(domain.SlotTimeFormat, req.SlotTime); err != nil {
			h.logger.Warn("POST /bookings/{id}/reserve - Invalid slot time %q: %v", req.SlotTime, err)
			handlers.RespondBadRequest(w, msgInvalidSlotTime)
			return
		}
	}

	booking, err := h.service.ReserveSlot(r.Context(), bookingID, req.SlotTime)
	if err != nil {
		switch {
		// Гонка за слот: кто-то успел забронировать раньше
		case errors.Is(err, reservations.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings/{id}/reserve - Slot unavailable: booking_id=%s, slot=%s",
				bookingID, req.SlotTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reserve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSlotTime)

		default:
			h.logger.Error("POST /bookings/{id}/reserve - Failed to reserve slot: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reserve - Slot reserved: booking_id=%s, invoice_id=%s, slot=%s",
		booking.ID, booking.InvoiceID, booking.SlotTime)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
