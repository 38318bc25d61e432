package reschedule_reservation

import (
	"fmt"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateWithinWindow проверяет, что интервал [start, start+duration)
// целиком лежит внутри рабочего окна
func validateWithinWindow(window domain.DayWindow, startTime types.TimeString, durationMinutes int) error {
	startMin, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	openMin, err := window.Open.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid window open time: %v", ErrInternal, err)
	}

	closeMin, err := window.Close.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid window close time: %v", ErrInternal, err)
	}

	if startMin < openMin || startMin+durationMinutes > closeMin {
		return ErrInvalidTimeSlot
	}

	return nil
}
