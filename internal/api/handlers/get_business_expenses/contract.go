package get_business_expenses

import (
	"context"
	"time"

	"github.com/agendly/booking-service/internal/service/expenses/models"
)

type ExpenseService interface {
	GetBusinessExpenses(ctx context.Context, businessID int64, startDate, endDate *time.Time) (*models.ExpenseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
