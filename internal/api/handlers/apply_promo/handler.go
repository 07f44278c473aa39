package apply_promo

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BookingService/internal/api/handlers"
	"github.com/m04kA/SPA-BookingService/internal/service/promotions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "отсутствует ID центра или промокод"
	msgInvoiceNotFound    = "инвойс не найден"
)

type Handler struct {
	service PromotionService
	logger  Logger
}

func NewHandler(service PromotionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/invoices/{invoiceId}/promo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	invoiceID := vars["invoiceId"]

	var req ApplyPromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /invoices/{id}/promo - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ApplyPromoCode(r.Context(), invoiceID, req.CenterID, req.PromoCode)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrInvoiceNotFound):
			h.logger.Warn("POST /invoices/{id}/promo - Invoice not found: invoice_id=%s", invoiceID)
			handlers.RespondNotFound(w, msgInvoiceNotFound)

		case errors.Is(err, promotions.ErrInvalidInput):
			h.logger.Warn("POST /invoices/{id}/promo - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /invoices/{id}/promo - Failed to apply promo code: invoice_id=%s, error=%v",
				invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invoices/{id}/promo - Promo code processed: invoice_id=%s, code=%s, applied=%t",
		invoiceID, req.PromoCode, result.Applied)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
