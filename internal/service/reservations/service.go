package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-BookingService/internal/domain"
	zenotiClient "github.com/m04kA/SPA-BookingService/internal/integrations/zenoti"
)

// Service сервис подтверждения бронирований: резерв слота, подтверждение,
// получение инвойса
type Service struct {
	zenoti ZenotiClient
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(zenoti ZenotiClient, logger Logger) *Service {
	return &Service{
		zenoti: zenoti,
		logger: logger,
	}
}

// ReserveSlot резервирует выбранный слот черновика и подтверждает
// бронирование. Оба вызова не идемпотентны, автоматических ретраев нет:
// повтор после неоднозначного сбоя мог бы создать дубль бронирования
func (s *Service) ReserveSlot(ctx context.Context, bookingID, slotTime string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if slotTime == "" {
		return nil, fmt.Errorf("%w: slotTime is required", ErrInvalidInput)
	}

	s.logger.Info("ReserveSlot: reserving slot booking=%s, time=%s", bookingID, slotTime)

	if err := s.zenoti.ReserveSlot(ctx, bookingID, slotTime); err != nil {
		if errors.Is(err, zenotiClient.ErrSlotUnavailable) {
			s.logger.Warn("ReserveSlot: slot already taken, booking=%s, time=%s", bookingID, slotTime)
			return nil, ErrSlotUnavailable
		}
		s.logger.Error("ReserveSlot: failed to reserve slot booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
	}

	booking, err := s.zenoti.ConfirmBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, zenotiClient.ErrSlotUnavailable) {
			s.logger.Warn("ReserveSlot: slot lost at confirmation, booking=%s, time=%s", bookingID, slotTime)
			return nil, ErrSlotUnavailable
		}
		s.logger.Error("ReserveSlot: failed to confirm booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	booking.SlotTime = slotTime

	s.logger.Info("ReserveSlot: booking confirmed, booking=%s, invoice=%s", booking.ID, booking.InvoiceID)
	return booking, nil
}

// GetInvoice получает инвойс подтвержденного бронирования
func (s *Service) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if invoiceID == "" {
		return nil, fmt.Errorf("%w: invoiceID is required", ErrInvalidInput)
	}

	invoice, err := s.zenoti.GetInvoice(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, zenotiClient.ErrInvoiceNotFound) {
			s.logger.Warn("GetInvoice: invoice id=%s not found", invoiceID)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("GetInvoice: failed to fetch invoice id=%s: %v", invoiceID, err)
		return nil, fmt.Errorf("%w: failed to get invoice: %v", ErrInternal, err)
	}

	return invoice, nil
}
