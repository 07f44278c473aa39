package list_services

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

// ListServicesResponse HTTP response model
type ListServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(services []*domain.Service) *ListServicesResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, service := range services {
		result = append(result, ServiceResponse{
			ID:          service.ID,
			Code:        service.Code,
			Name:        service.Name,
			Description: service.Description,
			Duration:    service.Duration,
			CategoryID:  service.CategoryID,
			SalePrice:   service.Price.SalePrice,
			FinalPrice:  service.Price.FinalPrice,
		})
	}
	return &ListServicesResponse{Services: result}
}
