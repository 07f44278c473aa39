package get_category

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// CategoryResponse HTTP response model
type CategoryResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(category *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          category.ID,
		Code:        category.Code,
		Name:        category.Name,
		Description: category.Description,
	}
}
