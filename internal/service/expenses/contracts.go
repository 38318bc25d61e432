package expenses

import (
	"context"
	"time"

	"github.com/agendly/booking-service/internal/domain"
)

// ExpenseRepository интерфейс репозитория расходов
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	ListByBusiness(ctx context.Context, businessID int64, startDate, endDate *time.Time) ([]*domain.Expense, error)
	SetPaid(ctx context.Context, id int64, paid bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
