package get_center

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// CenterResponse HTTP response model
type CenterResponse struct {
	ID           string               `json:"id"`
	Code         string               `json:"code,omitempty"`
	Name         string               `json:"name"`
	DisplayName  string               `json:"displayName,omitempty"`
	Description  string               `json:"description,omitempty"`
	Address      AddressResponse      `json:"address"`
	WorkingHours []WorkingDayResponse `json:"workingHours,omitempty"`
}

// AddressResponse HTTP response model
type AddressResponse struct {
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	ZipCode  string `json:"zipCode,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// WorkingDayResponse HTTP response model
type WorkingDayResponse struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsClosed  bool   `json:"isClosed"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(center *domain.Center) *CenterResponse {
	workingHours := make([]WorkingDayResponse, 0, len(center.WorkingHours))
	for _, day := range center.WorkingHours {
		workingHours = append(workingHours, WorkingDayResponse{
			DayOfWeek: day.DayOfWeek,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
			IsClosed:  day.IsClosed,
		})
	}

	return &CenterResponse{
		ID:          center.ID,
		Code:        center.Code,
		Name:        center.DisplayTitle(),
		DisplayName: center.DisplayName,
		Description: center.Description,
		Address: AddressResponse{
			Address1: center.Address.Address1,
			Address2: center.Address.Address2,
			City:     center.Address.City,
			ZipCode:  center.Address.ZipCode,
			Phone:    center.Address.Phone,
		},
		WorkingHours: workingHours,
	}
}
