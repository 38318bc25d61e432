package reschedule_reservation

import (
	"context"
	"time"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListBusyIntervals(ctx context.Context, professionalID int64, date time.Time, excludeID *int64) ([]domain.BusyInterval, error)
	Reschedule(ctx context.Context, id int64, date time.Time, startTime types.TimeString) error
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetBusinessWeek(ctx context.Context, businessID int64) (domain.WeeklySchedule, error)
	GetProfessionalWeek(ctx context.Context, professionalID int64) (domain.WeeklySchedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
