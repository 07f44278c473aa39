package build_schedule

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
	buildSchedule "github.com/m04kA/SPA-BookingService/internal/usecase/build_schedule"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Priority  int    `json:"priority"`
}

// ScheduleDayResponse HTTP response model.
// Неудачный день сохраняет свое место в окне: failed=true,
// failureReason заполнен, slots пустой
type ScheduleDayResponse struct {
	Date            string         `json:"date"`
	BookingID       string         `json:"bookingId,omitempty"`
	Slots           []SlotResponse `json:"slots"`
	HasAvailability bool           `json:"hasAvailability"`
	Failed          bool           `json:"failed"`
	FailureReason   string         `json:"failureReason,omitempty"`
}

// TherapistResponse HTTP response model
type TherapistResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	CenterID       string                `json:"centerId"`
	GuestID        string                `json:"guestId"`
	Therapist      *TherapistResponse    `json:"therapist,omitempty"`
	Days           []ScheduleDayResponse `json:"days"`
	PartialFailure bool                  `json:"partialFailure"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildSchedule.Response) *ScheduleResponse {
	days := make([]ScheduleDayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, toScheduleDayResponse(day))
	}

	var therapist *TherapistResponse
	if resp.Therapist != nil {
		therapist = &TherapistResponse{
			ID:       resp.Therapist.ID,
			FullName: resp.Therapist.FullName(),
		}
	}

	var guestID string
	if resp.Guest != nil {
		guestID = resp.Guest.ID
	}

	return &ScheduleResponse{
		CenterID:       resp.CenterID,
		GuestID:        guestID,
		Therapist:      therapist,
		Days:           days,
		PartialFailure: resp.PartialFailure,
	}
}

func toScheduleDayResponse(day domain.ScheduleDay) ScheduleDayResponse {
	slots := make([]SlotResponse, 0, len(day.Slots))
	for _, slot := range day.Slots {
		slots = append(slots, SlotResponse{
			Time:      slot.Time,
			Available: slot.Available,
			Priority:  slot.Priority,
		})
	}

	return ScheduleDayResponse{
		Date:            day.Date.Format(domain.DateFormat),
		BookingID:       day.BookingID,
		Slots:           slots,
		HasAvailability: day.HasAvailability(),
		Failed:          day.Failed,
		FailureReason:   day.FailureReason,
	}
}
