package list_addons

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

// Handle GET /api/v1/centers/{centerId}/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]

	addons, err := h.service.ListAddons(r.Context(), centerID)
	if err != nil {
		switch {
		// Центр без add-on категории - валидный пустой результат
		case errors.Is(err, catalog.ErrNoAddonCategory):
			h.logger.Info("GET /centers/{id}/addons - No add-on category: center_id=%s", centerID)
			handlers.RespondJSON(w, http.StatusOK, EmptyResponse())

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /centers/{id}/addons - Invalid center ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCenterID)

		default:
			h.logger.Error("GET /centers/{id}/addons - Failed to list addons: center_id=%s, error=%v", centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centers/{id}/addons - Retrieved addons: center_id=%s, suggested=%d, all=%d",
		centerID, len(addons.Suggested), len(addons.All))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(addons))
}
