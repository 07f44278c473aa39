package list_categories

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

// Handle GET /api/v1/centers/{centerId}/categories?activeCategoryId={id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]
	activeCategoryID := r.URL.Query().Get("activeCategoryId")

	categories, err := h.service.ListCategories(r.Context(), centerID, activeCategoryID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /centers/{id}/categories - Invalid center ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCenterID)

		default:
			h.logger.Error("GET /centers/{id}/categories - Failed to list categories: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centers/{id}/categories - Retrieved %d categories: center_id=%s", len(categories), centerID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(categories))
}
