package list_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BookingService/internal/api/handlers"
	"github.com/m04kA/SPA-BookingService/internal/service/catalog"
)

const (
	msgInvalidCenterID = "некорректный ID центра"
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

// Handle GET /api/v1/centers/{centerId}/services?categoryId={id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]
	categoryID := r.URL.Query().Get("categoryId")

	services, err := h.service.ListServices(r.Context(), centerID, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /centers/{id}/services - Invalid center ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCenterID)

		default:
			h.logger.Error("GET /centers/{id}/services - Failed to list services: center_id=%s, category_id=%s, error=%v",
				centerID, categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centers/{id}/services - Retrieved %d services: center_id=%s, category_id=%s",
		len(services), centerID, categoryID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(services))
}
