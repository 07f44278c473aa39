package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-BookingService/internal/domain"
	zenotiClient "github.com/m04kA/SPA-BookingService/internal/integrations/zenoti"
)

// Service сервис каталога: центры, категории, услуги, специалисты.
// Все операции read-only, состояние между запросами не хранится
type Service struct {
	zenoti ZenotiClient
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(zenoti ZenotiClient, logger Logger) *Service {
	return &Service{
		zenoti: zenoti,
		logger: logger,
	}
}

// ListCenters получает список всех центров
func (s *Service) ListCenters(ctx context.Context) ([]*domain.Center, error) {
	centers, err := s.zenoti.ListCenters(ctx)
	if err != nil {
		s.logger.Error("ListCenters: failed to fetch centers: %v", err)
		return nil, fmt.Errorf("%w: failed to list centers: %v", ErrInternal, err)
	}

	if centers == nil {
		centers = []*domain.Center{}
	}

	s.logger.Info("ListCenters: fetched %d centers", len(centers))
	return centers, nil
}

// GetCenter получает центр по ID
func (s *Service) GetCenter(ctx context.Context, centerID string) (*domain.Center, error) {
	if centerID == "" {
		return nil, fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	center, err := s.zenoti.GetCenter(ctx, centerID)
	if err != nil {
		if errors.Is(err, zenotiClient.ErrCenterNotFound) {
			s.logger.Warn("GetCenter: center id=%s not found", centerID)
			return nil, ErrCenterNotFound
		}
		s.logger.Error("GetCenter: failed to fetch center id=%s: %v", centerID, err)
		return nil, fmt.Errorf("%w: failed to get center: %v", ErrInternal, err)
	}

	return center, nil
}

// ListCategories получает категории услуг центра для обычного браузинга.
// Add-on и сервисные категории исключаются (бизнес-правило), у остальных
// выставляется флаг Active по совпадению с activeCategoryID
func (s *Service) ListCategories(ctx context.Context, centerID, activeCategoryID string) ([]*domain.Category, error) {
	if centerID == "" {
		return nil, fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	categories, err := s.zenoti.ListCategories(ctx, centerID, domain.CatalogPage, domain.CategoriesPageSize)
	if err != nil {
		s.logger.Error("ListCategories: failed to fetch categories for center=%s: %v", centerID, err)
		return nil, fmt.Errorf("%w: failed to list categories: %v", ErrInternal, err)
	}

	browsable := make([]*domain.Category, 0, len(categories))
	for _, category := range categories {
		if !category.IsBrowsable() {
			continue
		}
		category.Active = category.ID == activeCategoryID
		browsable = append(browsable, category)
	}

	s.logger.Info("ListCategories: center=%s, fetched=%d, browsable=%d", centerID, len(categories), len(browsable))
	return browsable, nil
}

// ListAddons получает add-on услуги центра, разбитые на suggested
// (первые SuggestedAddonsLimit в порядке выдачи Zenoti) и остальные.
// Берется ПЕРВАЯ add-on категория со страницы - детерминированно
// по порядку выдачи upstream'а
func (s *Service) ListAddons(ctx context.Context, centerID string) (*domain.Addons, error) {
	if centerID == "" {
		return nil, fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	categories, err := s.zenoti.ListCategories(ctx, centerID, domain.CatalogPage, domain.AddonCategoriesPageSize)
	if err != nil {
		s.logger.Error("ListAddons: failed to fetch categories for center=%s: %v", centerID, err)
		return nil, fmt.Errorf("%w: failed to list categories: %v", ErrInternal, err)
	}

	var addonCategory *domain.Category
	for _, category := range categories {
		if category.IsAddon() {
			addonCategory = category
			break
		}
	}

	if addonCategory == nil {
		s.logger.Info("ListAddons: center=%s has no add-on category", centerID)
		return nil, ErrNoAddonCategory
	}

	services, err := s.zenoti.ListServices(ctx, centerID, addonCategory.ID, domain.CatalogPage, domain.ServicesPageSize)
	if err != nil {
		s.logger.Error("ListAddons: failed to fetch add-on services for center=%s, category=%s: %v",
			centerID, addonCategory.ID, err)
		return nil, fmt.Errorf("%w: failed to list add-on services: %v", ErrInternal, err)
	}

	addons := splitAddons(services)

	s.logger.Info("ListAddons: center=%s, category=%s, suggested=%d, all=%d",
		centerID, addonCategory.ID, len(addons.Suggested), len(addons.All))
	return addons, nil
}

// GetCategory получает категорию по ID.
// Отсутствие любого из идентификаторов - это "ничего не выбрано",
// а не ошибка: возвращается nil без ошибки
func (s *Service) GetCategory(ctx context.Context, centerID, categoryID string) (*domain.Category, error) {
	if centerID == "" || categoryID == "" {
		return nil, nil
	}

	category, err := s.zenoti.GetCategory(ctx, centerID, categoryID)
	if err != nil {
		if errors.Is(err, zenotiClient.ErrCategoryNotFound) {
			s.logger.Warn("GetCategory: category id=%s not found in center=%s", categoryID, centerID)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("GetCategory: failed to fetch category id=%s: %v", categoryID, err)
		return nil, fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
	}

	return category, nil
}

// ListServices получает услуги центра, categoryID - опциональный фильтр
func (s *Service) ListServices(ctx context.Context, centerID, categoryID string) ([]*domain.Service, error) {
	if centerID == "" {
		return nil, fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	services, err := s.zenoti.ListServices(ctx, centerID, categoryID, domain.CatalogPage, domain.ServicesPageSize)
	if err != nil {
		s.logger.Error("ListServices: failed to fetch services for center=%s, category=%s: %v",
			centerID, categoryID, err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	if services == nil {
		services = []*domain.Service{}
	}

	s.logger.Info("ListServices: center=%s, category=%s, fetched=%d", centerID, categoryID, len(services))
	return services, nil
}

// GetService получает услугу по ID.
// Тот же optional-контракт, что и у GetCategory: отсутствие любого
// идентификатора - пустой результат без ошибки
func (s *Service) GetService(ctx context.Context, centerID, serviceID string) (*domain.Service, error) {
	if centerID == "" || serviceID == "" {
		return nil, nil
	}

	service, err := s.zenoti.GetService(ctx, centerID, serviceID)
	if err != nil {
		if errors.Is(err, zenotiClient.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%s not found in center=%s", serviceID, centerID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: failed to fetch service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	return service, nil
}

// ListTherapists получает список специалистов центра.
// Пустой centerID дает пустой список без похода в сеть
func (s *Service) ListTherapists(ctx context.Context, centerID string) ([]*domain.Therapist, error) {
	if centerID == "" {
		return []*domain.Therapist{}, nil
	}

	therapists, err := s.zenoti.ListTherapists(ctx, centerID)
	if err != nil {
		s.logger.Error("ListTherapists: failed to fetch therapists for center=%s: %v", centerID, err)
		return nil, fmt.Errorf("%w: failed to list therapists: %v", ErrInternal, err)
	}

	if therapists == nil {
		therapists = []*domain.Therapist{}
	}

	s.logger.Info("ListTherapists: center=%s, fetched=%d", centerID, len(therapists))
	return therapists, nil
}

// ResolveTherapist находит специалиста по ID в уже полученном списке.
// Чисто in-memory операция, сетевых вызовов не делает: отдельного
// эндпоинта "специалист по ID" у upstream'а нет.
// Возвращает nil, если список пуст, ID не задан или совпадения нет
func (s *Service) ResolveTherapist(therapists []*domain.Therapist, therapistID string) *domain.Therapist {
	if len(therapists) == 0 || therapistID == "" {
		return nil
	}

	for _, therapist := range therapists {
		if therapist.ID == therapistID {
			return therapist
		}
	}

	return nil
}

// splitAddons разбивает add-on услуги: первые SuggestedAddonsLimit
// в suggested, остальные в all, порядок upstream'а сохраняется
func splitAddons(services []*domain.Service) *domain.Addons {
	suggested := make([]domain.Service, 0, domain.SuggestedAddonsLimit)
	all := make([]domain.Service, 0)

	for i, service := range services {
		if i < domain.SuggestedAddonsLimit {
			suggested = append(suggested, *service)
		} else {
			all = append(all, *service)
		}
	}

	return &domain.Addons{
		Suggested: suggested,
		All:       all,
	}
}
