package apply_promo

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// ApplyPromoRequest HTTP request model
type ApplyPromoRequest struct {
	CenterID  string `json:"centerId"`
	PromoCode string `json:"promoCode"`
}

// InvoiceItemResponse HTTP response model
type InvoiceItemResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	FinalPrice float64 `json:"finalPrice"`
}

// InvoiceResponse HTTP response model
type InvoiceResponse struct {
	ID         string                `json:"id"`
	Items      []InvoiceItemResponse `json:"items"`
	TotalPrice float64               `json:"totalPrice"`
}

// ApplyPromoResponse HTTP response model.
// Отклоненный промокод - валидный ответ с applied=false
type ApplyPromoResponse struct {
	Applied bool             `json:"applied"`
	Invoice *InvoiceResponse `json:"invoice,omitempty"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(result *domain.PromoResult) *ApplyPromoResponse {
	response := &ApplyPromoResponse{Applied: result.Applied}

	if result.Invoice != nil {
		items := make([]InvoiceItemResponse, 0, len(result.Invoice.Items))
		for _, item := range result.Invoice.Items {
			items = append(items, InvoiceItemResponse{
				ID:         item.ID,
				Name:       item.Name,
				Price:      item.Price,
				FinalPrice: item.FinalPrice,
			})
		}
		response.Invoice = &InvoiceResponse{
			ID:         result.Invoice.ID,
			Items:      items,
			TotalPrice: result.Invoice.TotalPrice,
		}
	}

	return response
}
