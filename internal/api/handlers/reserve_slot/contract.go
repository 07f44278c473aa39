package reserve_slot

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

type ReservationService interface {
	ReserveSlot(ctx context.Context, bookingID, slotTime string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
