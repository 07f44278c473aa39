package get_service

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID          string  `json:"id"`
	Code        string  `json:"code,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Duration    int     `json:"durationMinutes"`
	CategoryID  string  `json:"categoryId,omitempty"`
	SalePrice   float64 `json:"salePrice"`
	FinalPrice  float64 `json:"finalPrice"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(service *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          service.ID,
		Code:        service.Code,
		Name:        service.Name,
		Description: service.Description,
		Duration:    service.Duration,
		CategoryID:  service.CategoryID,
		SalePrice:   service.Price.SalePrice,
		FinalPrice:  service.Price.FinalPrice,
	}
}
