package list_addons

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// AddonResponse HTTP response model
type AddonResponse struct {
	ID          string  `json:"id"`
	Code        string  `json:"code,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Duration    int     `json:"durationMinutes"`
	SalePrice   float64 `json:"salePrice"`
	FinalPrice  float64 `json:"finalPrice"`
}

// ListAddonsResponse HTTP response model
type ListAddonsResponse struct {
	Suggested []AddonResponse `json:"suggested"`
	All       []AddonResponse `json:"all"`
}

// EmptyResponse ответ для центра без add-on услуг
func EmptyResponse() *ListAddonsResponse {
	return &ListAddonsResponse{
		Suggested: []AddonResponse{},
		All:       []AddonResponse{},
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(addons *domain.Addons) *ListAddonsResponse {
	return &ListAddonsResponse{
		Suggested: toAddonResponses(addons.Suggested),
		All:       toAddonResponses(addons.All),
	}
}

func toAddonResponses(services []domain.Service) []AddonResponse {
	result := make([]AddonResponse, 0, len(services))
	for _, service := range services {
		result = append(result, AddonResponse{
			ID:          service.ID,
			Code:        service.Code,
			Name:        service.Name,
			Description: service.Description,
			Duration:    service.Duration,
			SalePrice:   service.Price.SalePrice,
			FinalPrice:  service.Price.FinalPrice,
		})
	}
	return result
}
