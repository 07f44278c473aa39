package list_categories

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// CategoryResponse HTTP response model
type CategoryResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// ListCategoriesResponse HTTP response model
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(categories []*domain.Category) *ListCategoriesResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, CategoryResponse{
			ID:          category.ID,
			Code:        category.Code,
			Name:        category.Name,
			Description: category.Description,
			Active:      category.Active,
		})
	}
	return &ListCategoriesResponse{Categories: result}
}
