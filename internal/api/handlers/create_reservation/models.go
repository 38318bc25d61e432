package create_reservation

import (
	"time"

	"github.com/agendly/booking-service/internal/domain"
	createReservation "github.com/agendly/booking-service/internal/usecase/create_reservation"
	"github.com/agendly/booking-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	BusinessID     int64   `json:"businessId"`
	ProfessionalID int64   `json:"professionalId"`
	ServiceIDs     []int64 `json:"serviceIds"`
	BookingDate    string  `json:"bookingDate"` // "2025-10-15"
	StartTime      string  `json:"startTime"`   // "10:00"
	Confirmed      bool    `json:"confirmed,omitempty"`
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
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(clientID int64) (*createReservation.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		BusinessID:     r.BusinessID,
		ClientID:       clientID,
		ProfessionalID: r.ProfessionalID,
		ServiceIDs:     r.ServiceIDs,
		Date:           bookingDate,
		StartTime:      startTime,
		Confirmed:      r.Confirmed,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
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
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
