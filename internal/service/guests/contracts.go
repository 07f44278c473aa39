package guests

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// ZenotiClient интерфейс клиента Zenoti API для создания гостей
type ZenotiClient interface {
	CreateGuest(ctx context.Context, centerID string, profile domain.GuestProfile) (*domain.Guest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
