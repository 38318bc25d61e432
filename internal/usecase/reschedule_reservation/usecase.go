package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendly/booking-service/internal/availability"
	"github.com/agendly/booking-service/internal/domain"
	reservationRepo "github.com/agendly/booking-service/internal/infra/storage/reservation"
	"github.com/agendly/booking-service/pkg/types"
)

// UseCase use case для переноса бронирования на другой слот
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных.
// Собственный интервал бронирования исключается из занятых: перенос
// на то же самое время всегда успешен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleReservation: id=%d, date=%s, time=%s",
		req.ReservationID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if availability.IsDateInPast(req.Date, now) {
		uc.logger.Warn("RescheduleReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Проверяем буфер для переносов на сегодня
	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("RescheduleReservation: booking time validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем бронирование с блокировкой (FOR UPDATE)
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("RescheduleReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("RescheduleReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 5.2. Проверяем, что статус допускает перенос
		if !reservation.CanBeRescheduled() {
			uc.logger.Warn("RescheduleReservation: reservation id=%d has status %s",
				req.ReservationID, reservation.Status)
			return ErrNotReschedulable
		}

		// 5.3. Вычисляем эффективное рабочее окно на новую дату
		businessWeek, err := uc.scheduleRepo.GetBusinessWeek(txCtx, reservation.BusinessID)
		if err != nil {
			uc.logger.Error("RescheduleReservation: failed to get business schedule: %v", err)
			return fmt.Errorf("%w: failed to get business schedule: %v", ErrInternal, err)
		}

		var professionalWeek domain.WeeklySchedule
		if reservation.ProfessionalID != nil {
			professionalWeek, err = uc.scheduleRepo.GetProfessionalWeek(txCtx, *reservation.ProfessionalID)
			if err != nil {
				uc.logger.Error("RescheduleReservation: failed to get professional schedule: %v", err)
				return fmt.Errorf("%w: failed to get professional schedule: %v", ErrInternal, err)
			}
		}

		window := availability.ResolveDayWindow(businessWeek, professionalWeek, req.Date)
		if window.Closed {
			uc.logger.Warn("RescheduleReservation: closed on %s", req.Date.Format(domain.DateFormat))
			return ErrClosedOnDate
		}

		// 5.4. Проверяем, что интервал помещается в рабочее окно
		if err := validateWithinWindow(window, req.StartTime, reservation.DurationMinutes); err != nil {
			uc.logger.Warn("RescheduleReservation: time slot validation failed: %v", err)
			return err
		}

		// 5.5. Проверяем конфликт с другими бронированиями, исключая своё
		if reservation.ProfessionalID != nil {
			busy, err := uc.reservationRepo.ListBusyIntervals(
				txCtx, *reservation.ProfessionalID, req.Date, &reservation.ID)
			if err != nil {
				uc.logger.Error("RescheduleReservation: failed to get busy intervals: %v", err)
				return fmt.Errorf("%w: failed to get busy intervals: %v", ErrInternal, err)
			}

			conflict, err := availability.HasConflict(req.StartTime, reservation.DurationMinutes, busy)
			if err != nil {
				uc.logger.Error("RescheduleReservation: failed to check conflicts: %v", err)
				return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
			}
			if conflict {
				uc.logger.Warn("RescheduleReservation: slot %s not available on %s",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
		}

		// 5.6. Переносим бронирование (статус становится confirmed)
		if err := uc.reservationRepo.Reschedule(txCtx, reservation.ID, req.Date, req.StartTime); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("RescheduleReservation: failed to reschedule: %v", err)
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		reservation.BookingDate = req.Date
		reservation.StartTime = req.StartTime
		reservation.Status = domain.StatusConfirmed
		result = reservation
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleReservation: successfully rescheduled reservation id=%d to %s %s",
		result.ID, req.Date.Format(domain.DateFormat), req.StartTime)

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
	}, nil
}

// validateBookingTime проверяет, что перенос на сегодня не нарушает буфер
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if !availability.IsSameDay(bookingDate, now) {
		return nil
	}

	minAllowed := availability.EarliestSameDayStart(now, domain.SameDayNoticeMinutes)
	if startTime.IsBefore(minAllowed) {
		return fmt.Errorf("%w: must book at least %d minutes in advance",
			ErrTooLateToBook, domain.SameDayNoticeMinutes)
	}

	return nil
}
