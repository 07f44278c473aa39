package build_schedule

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// fetchWindow запрашивает все дни окна с ограниченным параллелизмом.
// Возвращает ровно uc.windowDays записей: сбой одного дня дает запись
// с маркером Failed и пустым списком слотов, а не обрыв всего окна
func (uc *UseCase) fetchWindow(ctx context.Context, req *Request, guestID string, startDate time.Time) []domain.ScheduleDay {
	days := make([]domain.ScheduleDay, uc.windowDays)

	var wg sync.WaitGroup
	sem := make(chan struct{}, uc.concurrency)

	for i := 0; i < uc.windowDays; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			date := startDate.AddDate(0, 0, offset)
			days[offset] = uc.fetchDay(ctx, req, guestID, date)
		}(i)
	}

	wg.Wait()
	return days
}

// fetchDay получает доступность на один календарный день:
// черновик бронирования, затем его слоты
func (uc *UseCase) fetchDay(ctx context.Context, req *Request, guestID string, date time.Time) domain.ScheduleDay {
	day := domain.ScheduleDay{
		CenterID:  req.CenterID,
		Date:      date,
		GuestID:   guestID,
		ServiceID: req.ServiceID,
		Slots:     []domain.Slot{},
	}

	draft, err := uc.booking.CreateBooking(ctx, req.CenterID, date, guestID, req.ServiceID, req.TherapistID)
	if err != nil {
		uc.logger.Warn("BuildSchedule: failed to create booking draft for date=%s: %v",
			date.Format(domain.DateFormat), err)
		day.Failed = true
		day.FailureReason = "failed to create booking draft"
		return day
	}

	day.BookingID = draft.ID

	slots, err := uc.booking.GetBookingSlots(ctx, draft.ID)
	if err != nil {
		uc.logger.Warn("BuildSchedule: failed to fetch slots for booking=%s, date=%s: %v",
			draft.ID, date.Format(domain.DateFormat), err)
		day.Failed = true
		day.FailureReason = "failed to fetch slots"
		return day
	}

	if slots != nil {
		day.Slots = slots
	}

	return day
}
