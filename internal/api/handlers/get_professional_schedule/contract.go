package get_professional_schedule

import (
	"context"

	"github.com/agendly/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetProfessionalSchedule(ctx context.Context, professionalID int64) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
