package schedule

import (
	"context"

	"github.com/agendly/booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория недельных расписаний
type ScheduleRepository interface {
	GetBusinessWeek(ctx context.Context, businessID int64) (domain.WeeklySchedule, error)
	GetProfessionalWeek(ctx context.Context, professionalID int64) (domain.WeeklySchedule, error)
	ReplaceBusinessWeek(ctx context.Context, businessID int64, week domain.WeeklySchedule) error
	ReplaceProfessionalWeek(ctx context.Context, professionalID int64, week domain.WeeklySchedule) error
}

// StaffRepository интерфейс репозитория специалистов
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
