package list_addons

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

type CatalogService interface {
	ListAddons(ctx context.Context, centerID string) (*domain.Addons, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
