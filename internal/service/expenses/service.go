package expenses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendly/booking-service/internal/domain"
	expenseRepo "github.com/agendly/booking-service/internal/infra/storage/expense"
	"github.com/agendly/booking-service/internal/service/expenses/models"
)

// Service управляет расходами бизнеса
type Service struct {
	expenseRepo ExpenseRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса расходов
func NewService(expenseRepo ExpenseRepository, logger Logger) *Service {
	return &Service{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create регистрирует новый расход бизнеса
func (s *Service) Create(ctx context.Context, businessID int64, req *models.CreateExpenseRequest) (*models.ExpenseResponse, error) {
	s.logger.Info("Create: creating expense for business=%d", businessID)

	if req.Description == "" {
		s.logger.Warn("Create: empty description for business=%d", businessID)
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		s.logger.Warn("Create: non-positive amount=%f for business=%d", req.Amount, businessID)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	expenseDate, err := time.Parse(domain.DateFormat, req.ExpenseDate)
	if err != nil {
		s.logger.Warn("Create: invalid expense date %q for business=%d", req.ExpenseDate, businessID)
		return nil, fmt.Errorf("%w: invalid expense date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	expense := &domain.Expense{
		BusinessID:  businessID,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		Paid:        req.Paid,
	}

	created, err := s.expenseRepo.Create(ctx, expense)
	if err != nil {
		s.logger.Error("Create: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created expense id=%d for business=%d", created.ID, businessID)
	return models.FromDomainExpense(created), nil
}

// GetBusinessExpenses возвращает расходы бизнеса за период
// Границы периода опциональны: nil означает отсутствие ограничения
func (s *Service) GetBusinessExpenses(ctx context.Context, businessID int64, startDate, endDate *time.Time) (*models.ExpenseListResponse, error) {
	s.logger.Info("GetBusinessExpenses: fetching expenses for business=%d", businessID)

	expensesList, err := s.expenseRepo.ListByBusiness(ctx, businessID, startDate, endDate)
	if err != nil {
		s.logger.Error("GetBusinessExpenses: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetBusinessExpenses - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainExpenseList(expensesList), nil
}

// SetPaid помечает расход оплаченным или неоплаченным
func (s *Service) SetPaid(ctx context.Context, expenseID int64, req *models.SetPaidRequest) error {
	s.logger.Info("SetPaid: setting paid=%t for expense=%d", req.Paid, expenseID)

	if err := s.expenseRepo.SetPaid(ctx, expenseID, req.Paid); err != nil {
		if errors.Is(err, expenseRepo.ErrExpenseNotFound) {
			s.logger.Warn("SetPaid: expense id=%d not found", expenseID)
			return ErrExpenseNotFound
		}
		s.logger.Error("SetPaid: repository error for expense=%d: %v", expenseID, err)
		return fmt.Errorf("%w: SetPaid - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetPaid: successfully updated expense id=%d", expenseID)
	return nil
}
