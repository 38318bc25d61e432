package reschedule_reservation

import (
	"time"

	"github.com/agendly/booking-service/internal/domain"
	rescheduleReservation "github.com/agendly/booking-service/internal/usecase/reschedule_reservation"
	"github.com/agendly/booking-service/pkg/types"
)

// RescheduleReservationRequest HTTP request model
type RescheduleReservationRequest struct {
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	BusinessID      int64   `json:"businessId"`
	ClientID        int64   `json:"clientId"`
	ProfessionalID  *int64  `json:"professionalId,omitempty"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceNames    string  `json:"serviceNames"`
	Value           float64 `json:"value"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleReservationRequest) ToUseCaseRequest(reservationID int64) (*rescheduleReservation.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleReservation.Request{
		ReservationID: reservationID,
		Date:          bookingDate,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		BusinessID:      resp.BusinessID,
		ClientID:        resp.ClientID,
		ProfessionalID:  resp.ProfessionalID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceNames:    resp.ServiceNames,
		Value:           resp.Value,
	}
}
