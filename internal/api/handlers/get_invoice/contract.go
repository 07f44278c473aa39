package get_invoice

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

type ReservationService interface {
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
