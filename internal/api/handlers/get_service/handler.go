package get_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BookingService/internal/api/handlers"
	"github.com/m04kA/SPA-BookingService/internal/service/catalog"
)

const (
	msgServiceNotFound = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers/{centerId}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]
	serviceID := vars["serviceId"]

	service, err := h.service.GetService(r.Context(), centerID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("GET /centers/{id}/services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /centers/{id}/services/{id} - Failed to get service: service_id=%s, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Optional-контракт сервиса: nil без ошибки значит "ничего не выбрано"
	if service == nil {
		h.logger.Info("GET /centers/{id}/services/{id} - Empty selection: center_id=%s", centerID)
		handlers.RespondJSON(w, http.StatusOK, struct{}{})
		return
	}

	h.logger.Info("GET /centers/{id}/services/{id} - Service retrieved successfully: service_id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(service))
}
