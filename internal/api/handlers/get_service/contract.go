package get_service

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

type CatalogService interface {
	GetService(ctx context.Context, centerID, serviceID string) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
