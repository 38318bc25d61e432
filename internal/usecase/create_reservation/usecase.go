package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/agendly/booking-service/internal/availability"
	"github.com/agendly/booking-service/internal/domain"
	catalogRepo "github.com/agendly/booking-service/internal/infra/storage/catalog"
	staffRepo "github.com/agendly/booking-service/internal/infra/storage/staff"
	"github.com/agendly/booking-service/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	staffRepo       StaffRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	staffRepo StaffRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		staffRepo:       staffRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: business=%d, client=%d, professional=%d, date=%s, time=%s",
		req.BusinessID, req.ClientID, req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if availability.IsDateInPast(req.Date, now) {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Проверяем буфер для бронирований на сегодня
	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: booking time validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем специалиста и проверяем его статус
	professional, err := uc.staffRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateReservation: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateReservation: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if !professional.IsBookable() {
		uc.logger.Warn("CreateReservation: professional id=%d is not bookable (status=%s)",
			req.ProfessionalID, professional.Status)
		return nil, ErrProfessionalNotBookable
	}

	// 6. Получаем услуги из каталога и денормализуем их данные
	services, err := uc.catalogRepo.GetByIDs(ctx, req.BusinessID, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: one of services %v not found in business=%d",
				req.ServiceIDs, req.BusinessID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	durationMinutes := totalDuration(services)
	value := totalValue(services)

	serviceNames := make([]string, 0, len(services))
	for _, svc := range services {
		serviceNames = append(serviceNames, svc.Name)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Вычисляем эффективное рабочее окно на дату
		businessWeek, err := uc.scheduleRepo.GetBusinessWeek(txCtx, req.BusinessID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get business schedule: %v", err)
			return fmt.Errorf("%w: failed to get business schedule: %v", ErrInternal, err)
		}

		professionalWeek, err := uc.scheduleRepo.GetProfessionalWeek(txCtx, req.ProfessionalID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get professional schedule: %v", err)
			return fmt.Errorf("%w: failed to get professional schedule: %v", ErrInternal, err)
		}

		window := availability.ResolveDayWindow(businessWeek, professionalWeek, req.Date)
		if window.Closed {
			uc.logger.Warn("CreateReservation: closed on %s for professional=%d",
				req.Date.Format(domain.DateFormat), req.ProfessionalID)
			return ErrClosedOnDate
		}

		// 7.2. Проверяем, что интервал помещается в рабочее окно
		if err := validateWithinWindow(window, req.StartTime, durationMinutes); err != nil {
			uc.logger.Warn("CreateReservation: time slot validation failed: %v", err)
			return err
		}

		// 7.3. Получаем занятые интервалы с блокировкой (FOR UPDATE)
		busy, err := uc.reservationRepo.ListBusyIntervals(txCtx, req.ProfessionalID, req.Date, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get busy intervals: %v", err)
			return fmt.Errorf("%w: failed to get busy intervals: %v", ErrInternal, err)
		}

		// 7.4. Проверяем доступность слота
		conflict, err := availability.HasConflict(req.StartTime, durationMinutes, busy)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateReservation: slot %s not available for professional=%d on %s",
				req.StartTime, req.ProfessionalID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 7.5. Создаем бронирование с денормализацией данных услуг
		status := domain.StatusPending
		if req.Confirmed {
			status = domain.StatusConfirmed
		}

		reservation := &domain.Reservation{
			Reference:       uuid.NewString(),
			BusinessID:      req.BusinessID,
			ClientID:        req.ClientID,
			ProfessionalID:  ptr.Ptr(req.ProfessionalID),
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: durationMinutes,
			Status:          status,
			ServiceNames:    strings.Join(serviceNames, domain.ServiceNameSeparator),
			Value:           value,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, reference=%s",
		result.ID, result.Reference)

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		BusinessID:      result.BusinessID,
		ClientID:        result.ClientID,
		ProfessionalID:  result.ProfessionalID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceNames:    result.ServiceNames,
		Value:           result.Value,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
