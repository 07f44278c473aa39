package get_center

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

type CatalogService interface {
	GetCenter(ctx context.Context, centerID string) (*domain.Center, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
