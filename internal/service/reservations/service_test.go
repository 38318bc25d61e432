package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/booking-service/internal/domain"
	reservationRepo "github.com/agendly/booking-service/internal/infra/storage/reservation"
	"github.com/agendly/booking-service/internal/service/reservations/models"
)

type fakeRepo struct {
	reservation *domain.Reservation
	deleteErr   error

	updatedStatus domain.ReservationStatus
	cancelReason  string
	deleted       bool
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if f.reservation == nil {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.reservation, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, _ domain.BusinessReservationsFilter) ([]*domain.Reservation, error) {
	return []*domain.Reservation{f.reservation}, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.ReservationStatus) error {
	f.updatedStatus = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelReason = reason
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, _ int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(status domain.ReservationStatus) (*Service, *fakeRepo) {
	repo := &fakeRepo{reservation: &domain.Reservation{ID: 42, Status: status}}
	return NewService(repo, noopLogger{}), repo
}

func TestConfirm(t *testing.T) {
	svc, repo := newService(domain.StatusPending)

	require.NoError(t, svc.Confirm(context.Background(), 42))
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestConfirm_RepeatIsNoop(t *testing.T) {
	svc, _ := newService(domain.StatusConfirmed)

	assert.NoError(t, svc.Confirm(context.Background(), 42))
}

func TestConfirm_CompletedIsTerminal(t *testing.T) {
	svc, _ := newService(domain.StatusCompleted)

	err := svc.Confirm(context.Background(), 42)

	assert.ErrorIs(t, err, ErrCannotConfirm)
}

func TestComplete(t *testing.T) {
	svc, repo := newService(domain.StatusConfirmed)

	require.NoError(t, svc.Complete(context.Background(), 42))
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}

func TestComplete_CanceledRejected(t *testing.T) {
	svc, _ := newService(domain.StatusCanceled)

	err := svc.Complete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrCannotComplete)
}

func TestUpdateStatus_DelegatesToTransitions(t *testing.T) {
	svc, repo := newService(domain.StatusPending)

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_CancelNotAllowedHere(t *testing.T) {
	// Отмена требует причину и идёт через Cancel, а не через смену статуса
	svc, _ := newService(domain.StatusPending)

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "canceled"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := newService(domain.StatusPending)

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "nonsense"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	svc, repo := newService(domain.StatusConfirmed)

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{
		CancellationReason: "клиент не придёт",
	})

	require.NoError(t, err)
	assert.Equal(t, "клиент не придёт", repo.cancelReason)
}

func TestCancel_AlreadyCanceled(t *testing.T) {
	svc, _ := newService(domain.StatusCanceled)

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestPurge_OnlyCanceled(t *testing.T) {
	svc, repo := newService(domain.StatusCanceled)

	require.NoError(t, svc.Purge(context.Background(), 42))
	assert.True(t, repo.deleted)
}

func TestPurge_ActiveRejected(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
	} {
		svc, repo := newService(status)

		err := svc.Purge(context.Background(), 42)

		assert.ErrorIs(t, err, ErrCannotPurge)
		assert.False(t, repo.deleted)
	}
}

func TestPurge_ZeroRowsEscalates(t *testing.T) {
	// Удаление, молча отброшенное хранилищем, не должно выглядеть успехом
	svc, repo := newService(domain.StatusCanceled)
	repo.deleteErr = reservationRepo.ErrReservationNotFound

	err := svc.Purge(context.Background(), 42)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}
