package guests

import (
	"context"
	"fmt"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// Service сервис создания гостевых записей в центре
type Service struct {
	zenoti ZenotiClient
	logger Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(zenoti ZenotiClient, logger Logger) *Service {
	return &Service{
		zenoti: zenoti,
		logger: logger,
	}
}

// CreateGuest создает нового гостя в центре с профилем-заглушкой.
// Операция НЕ идемпотентна: каждый вызов создает новую запись upstream.
// Автоматических ретраев здесь нет - повтор после неоднозначного сбоя
// (например, таймаут после того как сервер успел записать гостя)
// привел бы к дублям, решение о повторе принимает вызывающая сторона
func (s *Service) CreateGuest(ctx context.Context, centerID string) (*domain.Guest, error) {
	if centerID == "" {
		return nil, fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	guest, err := s.zenoti.CreateGuest(ctx, centerID, DefaultProfile)
	if err != nil {
		s.logger.Error("CreateGuest: failed to create guest in center=%s: %v", centerID, err)
		return nil, fmt.Errorf("%w: failed to create guest: %v", ErrInternal, err)
	}

	s.logger.Info("CreateGuest: created guest id=%s in center=%s", guest.ID, centerID)
	return guest, nil
}
