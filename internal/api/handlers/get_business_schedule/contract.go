package get_business_schedule

import (
	"context"

	"github.com/agendly/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetBusinessSchedule(ctx context.Context, businessID int64) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
