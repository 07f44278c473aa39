package list_centers

import (
	"net/http"

	"github.com/m04kA/SPA-BookingService/internal/api/handlers"
)

const (
	msgUpstreamUnavailable = "сервис бронирования временно недоступен"
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

// Handle GET /api/v1/centers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centers, err := h.service.ListCenters(r.Context())
	if err != nil {
		h.logger.Error("GET /centers - Failed to list centers: %v", err)
		handlers.RespondBadGateway(w, msgUpstreamUnavailable)
		return
	}

	h.logger.Info("GET /centers - Retrieved %d centers", len(centers))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(centers))
}
