package get_metrics

import (
	"context"
	"time"

	"github.com/agendly/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListWithFilter(ctx context.Context, filter domain.BusinessReservationsFilter) ([]*domain.Reservation, error)
}

// StaffRepository интерфейс репозитория специалистов
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]*domain.Professional, error)
}

// ExpenseRepository интерфейс репозитория расходов
type ExpenseRepository interface {
	ListByBusiness(ctx context.Context, businessID int64, startDate, endDate *time.Time) ([]*domain.Expense, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
