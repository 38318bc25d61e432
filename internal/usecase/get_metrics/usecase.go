package get_metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendly/booking-service/internal/domain"
	staffRepo "github.com/agendly/booking-service/internal/infra/storage/staff"
)

// UseCase use case для расчёта метрик выручки и посещаемости
type UseCase struct {
	reservationRepo ReservationRepository
	staffRepo       StaffRepository
	expenseRepo     ExpenseRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	staffRepo StaffRepository,
	expenseRepo ExpenseRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		staffRepo:       staffRepo,
		expenseRepo:     expenseRepo,
		logger:          logger,
	}
}

// Execute выполняет use case расчёта метрик
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMetrics: business=%d, role=%s, period=%s..%s, bucket=%s",
		req.BusinessID, req.Role,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.Bucket)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMetrics: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем все бронирования за период, включая отменённые
	filter := domain.BusinessReservationsFilter{
		BusinessID:      req.BusinessID,
		ProfessionalID:  req.ProfessionalID,
		StartDate:       &req.StartDate,
		EndDate:         &req.EndDate,
		IncludeInactive: true,
	}

	reservations, err := uc.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetMetrics: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 3. Комиссия нужна только при фильтре по специалисту
	commissionRate := 0.0
	if req.ProfessionalID != nil {
		professional, err := uc.staffRepo.GetByID(ctx, *req.ProfessionalID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrProfessionalNotFound) {
				uc.logger.Warn("GetMetrics: professional id=%d not found", *req.ProfessionalID)
				return nil, ErrProfessionalNotFound
			}
			uc.logger.Error("GetMetrics: failed to get professional id=%d: %v", *req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
		}
		commissionRate = professional.CommissionRate
	}

	// 4. Расходы участвуют только в сводке владельца по всему бизнесу
	paidExpenses := 0.0
	ownerWideView := req.Role == domain.RoleOwner && req.ProfessionalID == nil
	if ownerWideView {
		expenses, err := uc.expenseRepo.ListByBusiness(ctx, req.BusinessID, &req.StartDate, &req.EndDate)
		if err != nil {
			uc.logger.Error("GetMetrics: failed to get expenses: %v", err)
			return nil, fmt.Errorf("%w: failed to get expenses: %v", ErrInternal, err)
		}
		paidExpenses = sumPaidExpenses(expenses)
	}

	// 5. Агрегируем
	gross := grossRevenue(reservations)
	completed, canceled := countByStatus(reservations)

	resp := &Response{
		BusinessID:       req.BusinessID,
		Role:             string(req.Role),
		ProfessionalID:   req.ProfessionalID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		GrossRevenue:     gross,
		NetRevenue:       netRevenue(req.Role, req.ProfessionalID != nil, gross, commissionRate, paidExpenses),
		AverageTicket:    averageTicket(gross, completed),
		CompletedCount:   completed,
		CanceledCount:    canceled,
		CancellationRate: rate(canceled, completed+canceled),
		AttendanceRate:   rate(completed, completed+canceled),
		Series:           buildSeries(reservations, req.StartDate, req.EndDate, req.Bucket),
		TopServices:      topServices(reservations, domain.TopServicesLimit),
	}

	// 6. Рейтинг специалистов доступен только владельцу по всему бизнесу
	if ownerWideView {
		professionals, err := uc.staffRepo.ListByBusiness(ctx, req.BusinessID)
		if err != nil {
			uc.logger.Error("GetMetrics: failed to list professionals: %v", err)
			return nil, fmt.Errorf("%w: failed to list professionals: %v", ErrInternal, err)
		}
		resp.Ranking = professionalRanking(reservations, professionals)
	}

	uc.logger.Info("GetMetrics: business=%d gross=%.2f net=%.2f completed=%d canceled=%d",
		req.BusinessID, resp.GrossRevenue, resp.NetRevenue, completed, canceled)

	return resp, nil
}
