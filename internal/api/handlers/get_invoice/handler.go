package get_invoice

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BookingService/internal/api/handlers"
	"github.com/m04kA/SPA-BookingService/internal/service/reservations"
)

const (
	msgInvoiceNotFound = "инвойс не найден"
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

// Handle GET /api/v1/invoices/{invoiceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	invoiceID := vars["invoiceId"]

	invoice, err := h.service.GetInvoice(r.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvoiceNotFound):
			h.logger.Warn("GET /invoices/{id} - Invoice not found: invoice_id=%s", invoiceID)
			handlers.RespondNotFound(w, msgInvoiceNotFound)

		default:
			h.logger.Error("GET /invoices/{id} - Failed to get invoice: invoice_id=%s, error=%v", invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /invoices/{id} - Invoice retrieved successfully: invoice_id=%s", invoiceID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(invoice))
}
