package build_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BookingService/internal/api/handlers"
	buildSchedule "github.com/m04kA/SPA-BookingService/internal/usecase/build_schedule"
)

const (
	msgMissingServiceID    = "отсутствует ID услуги"
	msgGuestCreationFailed = "не удалось создать гостевую запись"
	msgScheduleUnavailable = "расписание временно недоступно"
)

type Handler struct {
	useCase BuildScheduleUseCase
	logger  Logger
}

func NewHandler(useCase BuildScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers/{centerId}/schedule?serviceId={id}&therapistId={id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]
	serviceID := r.URL.Query().Get("serviceId")
	therapistID := r.URL.Query().Get("therapistId")

	result, err := h.useCase.Execute(r.Context(), &buildSchedule.Request{
		CenterID:    centerID,
		ServiceID:   serviceID,
		TherapistID: therapistID,
	})
	if err != nil {
		switch {
		case errors.Is(err, buildSchedule.ErrInvalidInput):
			h.logger.Warn("GET /centers/{id}/schedule - Invalid input: center_id=%s, error=%v", centerID, err)
			handlers.RespondBadRequest(w, msgMissingServiceID)

		case errors.Is(err, buildSchedule.ErrGuestCreationFailed):
			h.logger.Error("GET /centers/{id}/schedule - Guest creation failed: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondBadGateway(w, msgGuestCreationFailed)

		case errors.Is(err, buildSchedule.ErrScheduleUnavailable):
			h.logger.Error("GET /centers/{id}/schedule - Schedule unavailable: center_id=%s, service_id=%s",
				centerID, serviceID)
			handlers.RespondBadGateway(w, msgScheduleUnavailable)

		default:
			h.logger.Error("GET /centers/{id}/schedule - Failed to build schedule: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centers/{id}/schedule - Schedule built: center_id=%s, service_id=%s, days=%d, partial=%t",
		centerID, serviceID, len(result.Days), result.PartialFailure)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
