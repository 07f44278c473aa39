package reserve_slot

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// ReserveSlotRequest HTTP request model
type ReserveSlotRequest struct {
	SlotTime string `json:"slotTime"` // "2025-10-15T10:00:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID string `json:"bookingId"`
	InvoiceID string `json:"invoiceId"`
	SlotTime  string `json:"slotTime"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		BookingID: booking.ID,
		InvoiceID: booking.InvoiceID,
		SlotTime:  booking.SlotTime,
	}
}
