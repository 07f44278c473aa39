package get_category

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BookingService/internal/api/handlers"
	"github.com/m04kA/SPA-BookingService/internal/service/catalog"
)

const (
	msgCategoryNotFound = "категория не найдена"
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

// Handle GET /api/v1/centers/{centerId}/categories/{categoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]
	categoryID := vars["categoryId"]

	category, err := h.service.GetCategory(r.Context(), centerID, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("GET /centers/{id}/categories/{id} - Category not found: category_id=%s", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		default:
			h.logger.Error("GET /centers/{id}/categories/{id} - Failed to get category: category_id=%s, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Optional-контракт сервиса: nil без ошибки значит "ничего не выбрано"
	if category == nil {
		h.logger.Info("GET /centers/{id}/categories/{id} - Empty selection: center_id=%s", centerID)
		handlers.RespondJSON(w, http.StatusOK, struct{}{})
		return
	}

	h.logger.Info("GET /centers/{id}/categories/{id} - Category retrieved successfully: category_id=%s", categoryID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(category))
}
