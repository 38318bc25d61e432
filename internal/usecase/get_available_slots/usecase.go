package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendly/booking-service/internal/availability"
	"github.com/agendly/booking-service/internal/domain"
	staffRepo "github.com/agendly/booking-service/internal/infra/storage/staff"
	"github.com/agendly/booking-service/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	staffRepo       StaffRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	staffRepo StaffRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		staffRepo:       staffRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, professional=%d, date=%s, duration=%d",
		req.BusinessID, req.ProfessionalID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем специалиста и проверяем его статус
	professional, err := uc.staffRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if !professional.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: professional id=%d is not bookable (status=%s)",
			req.ProfessionalID, professional.Status)
		return nil, ErrProfessionalNotBookable
	}

	// 5. Получаем недельные расписания бизнеса и специалиста
	businessWeek, err := uc.scheduleRepo.GetBusinessWeek(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get business schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get business schedule: %v", ErrInternal, err)
	}

	professionalWeek, err := uc.scheduleRepo.GetProfessionalWeek(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get professional schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get professional schedule: %v", ErrInternal, err)
	}

	// 6. Вычисляем эффективное рабочее окно на дату
	window := availability.ResolveDayWindow(businessWeek, professionalWeek, req.Date)
	if window.Closed {
		uc.logger.Info("GetAvailableSlots: day %s is closed for professional=%d",
			req.Date.Format(domain.DateFormat), req.ProfessionalID)
		return uc.emptyResponse(req), nil
	}

	// 7. Получаем занятые интервалы специалиста на эту дату
	busy, err := uc.reservationRepo.ListBusyIntervals(ctx, req.ProfessionalID, req.Date, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get busy intervals: %v", ErrInternal, err)
	}

	// 8. Для бронирований на сегодня ограничиваем время начала снизу
	var earliestStart *types.TimeString
	if availability.IsSameDay(req.Date, now) {
		earliest := availability.EarliestSameDayStart(now, domain.SameDayNoticeMinutes)
		earliestStart = &earliest
	}

	// 9. Генерируем слоты
	slots, err := availability.GenerateSlots(availability.Request{
		Window:             window,
		DurationMinutes:    req.DurationMinutes,
		GranularityMinutes: domain.SlotGranularityMinutes,
		Busy:               busy,
		EarliestStart:      earliestStart,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%d, date=%s",
		len(slots), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:           req.Date,
		BusinessID:     req.BusinessID,
		ProfessionalID: req.ProfessionalID,
		Slots:          slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		Date:           req.Date,
		BusinessID:     req.BusinessID,
		ProfessionalID: req.ProfessionalID,
		Slots:          []types.TimeString{},
	}
}
