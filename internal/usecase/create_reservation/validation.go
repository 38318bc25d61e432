package create_reservation

import (
	"fmt"
	"time"

	"github.com/agendly/booking-service/internal/availability"
	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
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

// validateBookingTime проверяет, что бронирование на сегодня не нарушает буфер
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	// Для будущих дат проверка не нужна
	if !availability.IsSameDay(bookingDate, now) {
		return nil
	}

	minAllowed := availability.EarliestSameDayStart(now, domain.SameDayNoticeMinutes)
	if startTime.IsBefore(minAllowed) {
		return fmt.Errorf("%w: must book at least %d minutes in advance",
			ErrTooLateToBook, domain.SameDayNoticeMinutes)
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

// totalDuration суммирует длительности услуг, применяя минимальную длительность
func totalDuration(services []*domain.CatalogService) int {
	total := 0
	for _, svc := range services {
		total += svc.DurationMinutes
	}
	if total < domain.MinReservationDurationMinutes {
		total = domain.MinReservationDurationMinutes
	}
	return total
}

// totalValue суммирует цены услуг
func totalValue(services []*domain.CatalogService) float64 {
	total := 0.0
	for _, svc := range services {
		total += svc.Price
	}
	return total
}
