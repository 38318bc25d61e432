package create_reservation

import (
	"context"
	"time"

	"github.com/agendly/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	ListBusyIntervals(ctx context.Context, professionalID int64, date time.Time, excludeID *int64) ([]domain.BusyInterval, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetBusinessWeek(ctx context.Context, businessID int64) (domain.WeeklySchedule, error)
	GetProfessionalWeek(ctx context.Context, professionalID int64) (domain.WeeklySchedule, error)
}

// StaffRepository интерфейс репозитория специалистов
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByIDs(ctx context.Context, businessID int64, ids []int64) ([]*domain.CatalogService, error)
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
