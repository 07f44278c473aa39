package list_therapists

import (
	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// TherapistResponse HTTP response model
type TherapistResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FullName  string `json:"fullName"`
}

// ListTherapistsResponse HTTP response model
type ListTherapistsResponse struct {
	Therapists []TherapistResponse `json:"therapists"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(therapists []*domain.Therapist) *ListTherapistsResponse {
	result := make([]TherapistResponse, 0, len(therapists))
	for _, therapist := range therapists {
		result = append(result, TherapistResponse{
			ID:        therapist.ID,
			FirstName: therapist.FirstName,
			LastName:  therapist.LastName,
			FullName:  therapist.FullName(),
		})
	}
	return &ListTherapistsResponse{Therapists: result}
}
