package get_available_slots

import (
	"github.com/agendly/booking-service/internal/domain"
	getAvailableSlots "github.com/agendly/booking-service/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date           string   `json:"date"`
	BusinessID     int64    `json:"businessId"`
	ProfessionalID int64    `json:"professionalId"`
	Slots          []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &SlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		BusinessID:     resp.BusinessID,
		ProfessionalID: resp.ProfessionalID,
		Slots:          slots,
	}
}
