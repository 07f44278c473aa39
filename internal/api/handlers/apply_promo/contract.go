package apply_promo

import (
	"context"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

type PromotionService interface {
	ApplyPromoCode(ctx context.Context, invoiceID, centerID, promoCode string) (*domain.PromoResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
