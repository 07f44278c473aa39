package catalog

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// ZenotiClient интерфейс клиента Zenoti API для каталожных операций
type ZenotiClient interface {
	ListCenters(ctx context.Context) ([]*domain.Center, error)
	GetCenter(ctx context.Context, centerID string) (*domain.Center, error)
	ListCategories(ctx context.Context, centerID string, page, size int) ([]*domain.Category, error)
	GetCategory(ctx context.Context, centerID, categoryID string) (*domain.Category, error)
	ListServices(ctx context.Context, centerID, categoryID string, page, size int) ([]*domain.Service, error)
	GetService(ctx context.Context, centerID, serviceID string) (*domain.Service, error)
	ListTherapists(ctx context.Context, centerID string) ([]*domain.Therapist, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
