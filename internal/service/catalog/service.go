package catalog

import (
	"context"
	"fmt"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/internal/service/catalog/models"
)

// Service управляет каталогом услуг бизнеса
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Create добавляет новую услугу в каталог бизнеса
func (s *Service) Create(ctx context.Context, businessID int64, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service for business=%d", businessID)

	if req.Name == "" {
		s.logger.Warn("Create: empty service name for business=%d", businessID)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		s.logger.Warn("Create: non-positive duration=%d for business=%d", req.DurationMinutes, businessID)
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.Price < 0 {
		s.logger.Warn("Create: negative price=%f for business=%d", req.Price, businessID)
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	service := &domain.CatalogService{
		BusinessID:      businessID,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	}

	created, err := s.catalogRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d for business=%d", created.ID, businessID)
	return models.FromDomainService(created), nil
}

// GetBusinessServices возвращает все услуги каталога бизнеса
func (s *Service) GetBusinessServices(ctx context.Context, businessID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("GetBusinessServices: fetching services for business=%d", businessID)

	services, err := s.catalogRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("GetBusinessServices: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetBusinessServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}
