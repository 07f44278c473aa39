package reservations

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// ZenotiClient интерфейс клиента Zenoti API для подтверждения бронирований
type ZenotiClient interface {
	ReserveSlot(ctx context.Context, bookingID, slotTime string) error
	ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
