package list_therapists

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/centers/{centerId}/therapists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]

	therapists, err := h.service.ListTherapists(r.Context(), centerID)
	if err != nil {
		h.logger.Error("GET /centers/{id}/therapists - Failed to list therapists: center_id=%s, error=%v",
			centerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /centers/{id}/therapists - Retrieved %d therapists: center_id=%s", len(therapists), centerID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(therapists))
}
