package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendly/booking-service/internal/domain"
	reservationRepo "github.com/agendly/booking-service/internal/infra/storage/reservation"
	"github.com/agendly/booking-service/internal/service/reservations/models"
)

// Service управляет жизненным циклом бронирования после создания:
// подтверждение, завершение, отмена и окончательное удаление.
// Создание и перенос живут в отдельных usecase - им нужна
// перепроверка конфликтов в транзакции
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// GetBusinessReservations получает бронирования бизнеса с гибкой фильтрацией
// Поддерживает фильтрацию по специалисту, периоду, статусу и включению
// отменённых бронирований
func (s *Service) GetBusinessReservations(ctx context.Context, req *models.GetBusinessReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetBusinessReservations: fetching reservations for business=%d", req.BusinessID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBusinessReservations: invalid filter for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBusinessReservations: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetBusinessReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBusinessReservations: successfully fetched %d reservations for business=%d",
		len(reservations), req.BusinessID)
	return models.FromDomainReservationList(reservations), nil
}

// Confirm подтверждает бронирование
// Допустимо из статусов pending и confirmed (повторное подтверждение - no-op)
func (s *Service) Confirm(ctx context.Context, id int64) error {
	s.logger.Info("Confirm: confirming reservation id=%d", id)

	reservation, err := s.getReservation(ctx, "Confirm", id)
	if err != nil {
		return err
	}

	if !reservation.CanBeConfirmed() {
		s.logger.Warn("Confirm: reservation id=%d cannot be confirmed, status=%s", id, reservation.Status)
		return ErrCannotConfirm
	}

	if err := s.updateStatus(ctx, "Confirm", id, domain.StatusConfirmed); err != nil {
		return err
	}

	s.logger.Info("Confirm: successfully confirmed reservation id=%d", id)
	return nil
}

// Complete помечает бронирование завершённым
// Завершённое бронирование терминально: дальнейшие переходы запрещены
func (s *Service) Complete(ctx context.Context, id int64) error {
	s.logger.Info("Complete: completing reservation id=%d", id)

	reservation, err := s.getReservation(ctx, "Complete", id)
	if err != nil {
		return err
	}

	if !reservation.CanBeCompleted() {
		s.logger.Warn("Complete: reservation id=%d cannot be completed, status=%s", id, reservation.Status)
		return ErrCannotComplete
	}

	if err := s.updateStatus(ctx, "Complete", id, domain.StatusCompleted); err != nil {
		return err
	}

	s.logger.Info("Complete: successfully completed reservation id=%d", id)
	return nil
}

// UpdateStatus обновляет статус бронирования по строковому значению
// Разрешены только целевые статусы confirmed и completed:
// отмена идёт через Cancel (с причиной), перенос - через usecase переноса
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	status, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	switch status {
	case domain.StatusConfirmed:
		return s.Confirm(ctx, id)
	case domain.StatusCompleted:
		return s.Complete(ctx, id)
	default:
		s.logger.Warn("UpdateStatus: status=%s is not allowed via status update for reservation id=%d", status, id)
		return fmt.Errorf("%w: status %s is not allowed here", ErrInvalidStatus, status)
	}
}

// Cancel отменяет бронирование с указанием причины
// Отменённое бронирование освобождает слот, но остаётся в истории до purge
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reservation, err := s.getReservation(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// Purge окончательно удаляет отменённое бронирование
// Ноль затронутых строк эскалируется как ErrReservationNotFound:
// удаление, молча отброшенное хранилищем, не должно выглядеть успехом
func (s *Service) Purge(ctx context.Context, id int64) error {
	s.logger.Info("Purge: purging reservation id=%d", id)

	reservation, err := s.getReservation(ctx, "Purge", id)
	if err != nil {
		return err
	}

	if !reservation.CanBePurged() {
		s.logger.Warn("Purge: reservation id=%d is not cancelled, status=%s", id, reservation.Status)
		return ErrCannotPurge
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Purge: reservation id=%d not found during delete (zero rows affected)", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Purge: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Purge - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Purge: successfully purged reservation id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

func (s *Service) updateStatus(ctx context.Context, op string, id int64, status domain.ReservationStatus) error {
	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found during update", op, id)
			return ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
