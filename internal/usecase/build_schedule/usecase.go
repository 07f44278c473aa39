package build_schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// UseCase use case построения агрегированного расписания доступности:
// свежий гость + окно из windowDays календарных дней, на каждый день
// черновик бронирования и его слоты
type UseCase struct {
	guests       GuestProvisioner
	catalog      CatalogService
	booking      BookingClient
	timeProvider TimeProvider
	logger       Logger
	windowDays   int
	concurrency  int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	guests GuestProvisioner,
	catalog CatalogService,
	booking BookingClient,
	logger Logger,
	windowDays int,
	concurrency int,
) *UseCase {
	if windowDays < 1 {
		windowDays = domain.DefaultScheduleWindowDays
	}
	if concurrency < 1 {
		concurrency = domain.DefaultScheduleConcurrency
	}

	return &UseCase{
		guests:       guests,
		catalog:      catalog,
		booking:      booking,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		windowDays:   windowDays,
		concurrency:  concurrency,
	}
}

// Execute выполняет use case построения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildSchedule: center=%s, service=%s, therapist=%s",
		req.CenterID, req.ServiceID, req.TherapistID)

	// 1. Валидация входных данных (до каких-либо сетевых вызовов)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем "сегодня" ОДИН раз на весь запрос, чтобы окно
	// не поехало, если день сменится посреди fan-out'а
	now := uc.timeProvider.Now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// 3. Создаем гостя под этот проход флоу (новая запись на каждый запрос)
	guest, err := uc.guests.CreateGuest(ctx, req.CenterID)
	if err != nil {
		uc.logger.Error("BuildSchedule: failed to create guest for center=%s: %v", req.CenterID, err)
		return nil, fmt.Errorf("%w: %v", ErrGuestCreationFailed, err)
	}

	// 4. Резолвим выбранного специалиста (best-effort: сбой каталога
	// не должен ронять построение расписания)
	therapist := uc.resolveTherapist(ctx, req.CenterID, req.TherapistID)

	// 5. Fan-out по дням окна с ограниченным параллелизмом
	days := uc.fetchWindow(ctx, req, guest.ID, startDate)

	// Если вызывающая сторона ушла - возвращаем ошибку контекста,
	// а не расписание, в котором все дни "сбойные"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Сортируем по дате: порядок завершения горутин не обязан
	// совпадать с порядком дат
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	// 7. Агрегируем результат по правилу частичных сбоев
	failed := 0
	for _, day := range days {
		if day.Failed {
			failed++
		}
	}

	if failed == len(days) {
		uc.logger.Error("BuildSchedule: every day of the window failed, center=%s, service=%s",
			req.CenterID, req.ServiceID)
		return nil, ErrScheduleUnavailable
	}

	if failed > 0 {
		uc.logger.Warn("BuildSchedule: partial failure, %d of %d days failed, center=%s",
			failed, len(days), req.CenterID)
	}

	uc.logger.Info("BuildSchedule: built %d-day schedule for center=%s, service=%s, guest=%s, failed_days=%d",
		len(days), req.CenterID, req.ServiceID, guest.ID, failed)

	return &Response{
		CenterID:       req.CenterID,
		Guest:          guest,
		Therapist:      therapist,
		Days:           days,
		PartialFailure: failed > 0,
	}, nil
}

// resolveTherapist находит выбранного специалиста в списке специалистов
// центра. Любой сбой деградирует до "специалист не выбран"
func (uc *UseCase) resolveTherapist(ctx context.Context, centerID, therapistID string) *domain.Therapist {
	if therapistID == "" {
		return nil
	}

	therapists, err := uc.catalog.ListTherapists(ctx, centerID)
	if err != nil {
		uc.logger.Warn("BuildSchedule: failed to list therapists for center=%s: %v", centerID, err)
		return nil
	}

	therapist := uc.catalog.ResolveTherapist(therapists, therapistID)
	if therapist == nil {
		uc.logger.Warn("BuildSchedule: therapist id=%s not found in center=%s", therapistID, centerID)
	}

	return therapist
}
