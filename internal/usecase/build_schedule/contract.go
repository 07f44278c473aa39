package build_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// GuestProvisioner интерфейс сервиса создания гостевых записей
type GuestProvisioner interface {
	CreateGuest(ctx context.Context, centerID string) (*domain.Guest, error)
}

// CatalogService интерфейс каталога для резолва выбранного специалиста
type CatalogService interface {
	ListTherapists(ctx context.Context, centerID string) ([]*domain.Therapist, error)
	ResolveTherapist(therapists []*domain.Therapist, therapistID string) *domain.Therapist
}

// BookingClient интерфейс клиента Zenoti API для черновиков бронирования
type BookingClient interface {
	CreateBooking(ctx context.Context, centerID string, date time.Time, guestID, serviceID, therapistID string) (*domain.BookingDraft, error)
	GetBookingSlots(ctx context.Context, bookingID string) ([]domain.Slot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
