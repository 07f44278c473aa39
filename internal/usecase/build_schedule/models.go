package build_schedule

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// Request модель запроса на построение расписания
type Request struct {
	CenterID    string // ID центра (обязательный)
	ServiceID   string // ID услуги (обязательный)
	TherapistID string // ID специалиста (опциональный)
}

// Response модель ответа с агрегированным расписанием.
// Days всегда содержит ровно windowDays записей по возрастанию даты,
// неудачные дни остаются на своих местах с маркером сбоя
type Response struct {
	CenterID       string
	Guest          *domain.Guest
	Therapist      *domain.Therapist // nil, если специалист не выбран или не найден
	Days           []domain.ScheduleDay
	PartialFailure bool // true, если часть дней не удалось получить
}
