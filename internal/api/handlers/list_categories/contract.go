package list_categories

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

type CatalogService interface {
	ListCategories(ctx context.Context, centerID, activeCategoryID string) ([]*domain.Category, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
