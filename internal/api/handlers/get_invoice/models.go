package get_invoice

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// InvoiceItemResponse HTTP response model
type InvoiceItemResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	FinalPrice float64 `json:"finalPrice"`
}

// InvoiceResponse HTTP response model
type InvoiceResponse struct {
	ID          string                `json:"id"`
	GuestID     string                `json:"guestId,omitempty"`
	Items       []InvoiceItemResponse `json:"items"`
	TotalPrice  float64               `json:"totalPrice"`
	HasDiscount bool                  `json:"hasDiscount"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(invoice *domain.Invoice) *InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, InvoiceItemResponse{
			ID:         item.ID,
			Name:       item.Name,
			Price:      item.Price,
			FinalPrice: item.FinalPrice,
		})
	}

	return &InvoiceResponse{
		ID:          invoice.ID,
		GuestID:     invoice.GuestID,
		Items:       items,
		TotalPrice:  invoice.TotalPrice,
		HasDiscount: invoice.HasDiscount(),
	}
}
