package get_metrics

import (
	"fmt"

	"github.com/agendly/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if !req.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not precede startDate", ErrInvalidInput)
	}

	if !req.Bucket.IsValid() {
		return fmt.Errorf("%w: unknown bucket %q", ErrInvalidInput, req.Bucket)
	}

	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	// Специалист видит только собственные метрики
	if req.Role == domain.RoleProfessional && req.ProfessionalID == nil {
		return fmt.Errorf("%w: professionalID is required for professional role", ErrInvalidInput)
	}

	return nil
}
