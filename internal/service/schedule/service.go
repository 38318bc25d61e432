package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendly/booking-service/internal/domain"
	staffRepo "github.com/agendly/booking-service/internal/infra/storage/staff"
	"github.com/agendly/booking-service/internal/service/schedule/models"
)

// Service управляет недельными расписаниями бизнеса и специалистов
type Service struct {
	scheduleRepo ScheduleRepository
	staffRepo    StaffRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		staffRepo:    staffRepo,
		logger:       logger,
	}
}

// GetBusinessSchedule возвращает недельное расписание бизнеса
func (s *Service) GetBusinessSchedule(ctx context.Context, businessID int64) (*models.WeekResponse, error) {
	s.logger.Info("GetBusinessSchedule: fetching schedule for business=%d", businessID)

	week, err := s.scheduleRepo.GetBusinessWeek(ctx, businessID)
	if err != nil {
		s.logger.Error("GetBusinessSchedule: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetBusinessSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeek(week), nil
}

// UpdateBusinessSchedule полностью заменяет недельное расписание бизнеса
func (s *Service) UpdateBusinessSchedule(ctx context.Context, businessID int64, req *models.WeekRequest) (*models.WeekResponse, error) {
	s.logger.Info("UpdateBusinessSchedule: updating schedule for business=%d", businessID)

	week, err := req.ToDomainWeek()
	if err != nil {
		s.logger.Warn("UpdateBusinessSchedule: invalid week for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.scheduleRepo.ReplaceBusinessWeek(ctx, businessID, week); err != nil {
		s.logger.Error("UpdateBusinessSchedule: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: UpdateBusinessSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBusinessSchedule: successfully updated schedule for business=%d (%d days)",
		businessID, len(week))
	return models.FromDomainWeek(week), nil
}

// GetProfessionalSchedule возвращает персональное расписание специалиста
// Пустой ответ означает отсутствие override: действует расписание бизнеса
func (s *Service) GetProfessionalSchedule(ctx context.Context, professionalID int64) (*models.WeekResponse, error) {
	s.logger.Info("GetProfessionalSchedule: fetching schedule for professional=%d", professionalID)

	if _, err := s.getProfessional(ctx, "GetProfessionalSchedule", professionalID); err != nil {
		return nil, err
	}

	week, err := s.scheduleRepo.GetProfessionalWeek(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetProfessionalSchedule: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeek(week), nil
}

// UpdateProfessionalSchedule полностью заменяет персональное расписание специалиста
// Пустой набор дней удаляет override целиком
func (s *Service) UpdateProfessionalSchedule(ctx context.Context, professionalID int64, req *models.WeekRequest) (*models.WeekResponse, error) {
	s.logger.Info("UpdateProfessionalSchedule: updating schedule for professional=%d", professionalID)

	if _, err := s.getProfessional(ctx, "UpdateProfessionalSchedule", professionalID); err != nil {
		return nil, err
	}

	week, err := req.ToDomainWeek()
	if err != nil {
		s.logger.Warn("UpdateProfessionalSchedule: invalid week for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.scheduleRepo.ReplaceProfessionalWeek(ctx, professionalID, week); err != nil {
		s.logger.Error("UpdateProfessionalSchedule: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: UpdateProfessionalSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfessionalSchedule: successfully updated schedule for professional=%d (%d days)",
		professionalID, len(week))
	return models.FromDomainWeek(week), nil
}

func (s *Service) getProfessional(ctx context.Context, op string, professionalID int64) (*domain.Professional, error) {
	professional, err := s.staffRepo.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrProfessionalNotFound) {
			s.logger.Warn("%s: professional id=%d not found", op, professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("%s: failed to get professional id=%d: %v", op, professionalID, err)
		return nil, fmt.Errorf("%w: %s - failed to get professional: %v", ErrInternal, op, err)
	}
	return professional, nil
}
