package promotions

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// ZenotiClient интерфейс клиента Zenoti API для применения промокодов
type ZenotiClient interface {
	ApplyPromoCode(ctx context.Context, invoiceID, centerID, offerCode string) (bool, *domain.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
