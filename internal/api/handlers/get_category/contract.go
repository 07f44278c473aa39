package get_category

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

type CatalogService interface {
	GetCategory(ctx context.Context, centerID, categoryID string) (*domain.Category, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
