package promotions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-BookingService/internal/domain"
	zenotiClient "github.com/m04kA/SPA-BookingService/internal/integrations/zenoti"
)

// Service сервис применения промокодов к инвойсам
type Service struct {
	zenoti ZenotiClient
	logger Logger
}

// NewService создает новый экземпляр сервиса промокодов
func NewService(zenoti ZenotiClient, logger Logger) *Service {
	return &Service{
		zenoti: zenoti,
		logger: logger,
	}
}

// ApplyPromoCode применяет промокод к инвойсу.
// Отклонение кода upstream'ом (невалидный/просроченный) - это валидный
// результат Applied=false с неизмененным инвойсом, а не ошибка.
// Ошибкой считаются только транспортные/серверные сбои
func (s *Service) ApplyPromoCode(ctx context.Context, invoiceID, centerID, promoCode string) (*domain.PromoResult, error) {
	if invoiceID == "" {
		return nil, fmt.Errorf("%w: invoiceID is required", ErrInvalidInput)
	}
	if centerID == "" {
		return nil, fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}
	if promoCode == "" {
		return nil, fmt.Errorf("%w: promoCode is required", ErrInvalidInput)
	}

	applied, invoice, err := s.zenoti.ApplyPromoCode(ctx, invoiceID, centerID, promoCode)
	if err != nil {
		if errors.Is(err, zenotiClient.ErrPromoNotApplicable) {
			s.logger.Info("ApplyPromoCode: code rejected, invoice=%s, code=%s", invoiceID, promoCode)
			return s.rejectedResult(ctx, invoiceID)
		}
		if errors.Is(err, zenotiClient.ErrInvoiceNotFound) {
			s.logger.Warn("ApplyPromoCode: invoice id=%s not found", invoiceID)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("ApplyPromoCode: failed to apply code to invoice=%s: %v", invoiceID, err)
		return nil, fmt.Errorf("%w: failed to apply promo code: %v", ErrInternal, err)
	}

	s.logger.Info("ApplyPromoCode: invoice=%s, code=%s, applied=%t", invoiceID, promoCode, applied)
	return &domain.PromoResult{
		Applied: applied,
		Invoice: invoice,
	}, nil
}

// rejectedResult собирает результат для отклоненного кода: скидки нет,
// инвойс возвращается в неизмененном виде
func (s *Service) rejectedResult(ctx context.Context, invoiceID string) (*domain.PromoResult, error) {
	invoice, err := s.zenoti.GetInvoice(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, zenotiClient.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("ApplyPromoCode: failed to fetch invoice=%s after rejection: %v", invoiceID, err)
		return nil, fmt.Errorf("%w: failed to get invoice: %v", ErrInternal, err)
	}

	return &domain.PromoResult{
		Applied: false,
		Invoice: invoice,
	}, nil
}
