package get_center

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BookingService/internal/api/handlers"
	"github.com/m04kA/SPA-BookingService/internal/service/catalog"
)

const (
	msgInvalidCenterID = "некорректный ID центра"
	msgCenterNotFound  = "центр не найден"
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

// Handle GET /api/v1/centers/{centerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]

	center, err := h.service.GetCenter(r.Context(), centerID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCenterNotFound):
			h.logger.Warn("GET /centers/{id} - Center not found: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgCenterNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /centers/{id} - Invalid center ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCenterID)

		default:
			h.logger.Error("GET /centers/{id} - Failed to get center: center_id=%s, error=%v", centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centers/{id} - Center retrieved successfully: center_id=%s", centerID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(center))
}
