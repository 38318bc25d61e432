package reschedule_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/ptr"
	"github.com/agendly/booking-service/pkg/types"
)

// --- Фейки зависимостей ---

type fakeReservationRepo struct {
	reservation *domain.Reservation
	busy        []domain.BusyInterval

	// Для проверки самоисключения при поиске конфликтов
	gotExcludeID *int64

	rescheduledDate time.Time
	rescheduledTime types.TimeString
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	return f.reservation, nil
}

func (f *fakeReservationRepo) ListBusyIntervals(_ context.Context, _ int64, _ time.Time, excludeID *int64) ([]domain.BusyInterval, error) {
	f.gotExcludeID = excludeID
	return f.busy, nil
}

func (f *fakeReservationRepo) Reschedule(_ context.Context, _ int64, date time.Time, startTime types.TimeString) error {
	f.rescheduledDate = date
	f.rescheduledTime = startTime
	return nil
}

type fakeScheduleRepo struct {
	businessWeek     domain.WeeklySchedule
	professionalWeek domain.WeeklySchedule
}

func (f *fakeScheduleRepo) GetBusinessWeek(_ context.Context, _ int64) (domain.WeeklySchedule, error) {
	return f.businessWeek, nil
}

func (f *fakeScheduleRepo) GetProfessionalWeek(_ context.Context, _ int64) (domain.WeeklySchedule, error) {
	return f.professionalWeek, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- Вспомогательные конструкторы ---

func mustTime(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

// 2026-02-02 и 2026-02-03 - понедельник и вторник
var (
	originalDate = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	newDate      = time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
)

func existingReservation(t *testing.T) *domain.Reservation {
	t.Helper()
	return &domain.Reservation{
		ID:              42,
		Reference:       "ref-42",
		BusinessID:      1,
		ClientID:        100,
		ProfessionalID:  ptr.Ptr(int64(7)),
		BookingDate:     originalDate,
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 60,
		Status:          domain.StatusPending,
	}
}

type fixture struct {
	uc              *UseCase
	reservationRepo *fakeReservationRepo
	scheduleRepo    *fakeScheduleRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	week := domain.WeeklySchedule{
		time.Monday:  {Open: mustTime(t, "09:00"), Close: mustTime(t, "18:00")},
		time.Tuesday: {Open: mustTime(t, "09:00"), Close: mustTime(t, "18:00")},
	}
	f := &fixture{
		reservationRepo: &fakeReservationRepo{reservation: existingReservation(t)},
		scheduleRepo:    &fakeScheduleRepo{businessWeek: week},
	}
	f.uc = NewUseCase(f.reservationRepo, f.scheduleRepo, &fakeTxManager{}, noopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: originalDate.AddDate(0, 0, -7)}
	return f
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          newDate,
		StartTime:     mustTime(t, "14:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, newDate, resp.BookingDate)
	assert.Equal(t, "14:00", resp.StartTime.String())
	assert.Equal(t, newDate, f.reservationRepo.rescheduledDate)
	assert.Equal(t, "14:00", f.reservationRepo.rescheduledTime.String())
}

func TestExecute_StatusBecomesConfirmed(t *testing.T) {
	// Перенос - это подтверждение: pending становится confirmed
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          newDate,
		StartTime:     mustTime(t, "14:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_OwnIntervalExcluded(t *testing.T) {
	// Перенос на собственный слот успешен: интервал бронирования
	// исключается из занятых по его ID
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          originalDate,
		StartTime:     mustTime(t, "10:00"),
	})

	require.NoError(t, err)
	require.NotNil(t, f.reservationRepo.gotExcludeID)
	assert.Equal(t, int64(42), *f.reservationRepo.gotExcludeID)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture(t)
	f.reservationRepo.busy = []domain.BusyInterval{
		{Start: 14 * 60, End: 15 * 60},
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          newDate,
		StartTime:     mustTime(t, "14:30"),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CanceledNotReschedulable(t *testing.T) {
	f := newFixture(t)
	f.reservationRepo.reservation.Status = domain.StatusCanceled

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          newDate,
		StartTime:     mustTime(t, "14:00"),
	})

	assert.ErrorIs(t, err, ErrNotReschedulable)
}

func TestExecute_CompletedNotReschedulable(t *testing.T) {
	f := newFixture(t)
	f.reservationRepo.reservation.Status = domain.StatusCompleted

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          newDate,
		StartTime:     mustTime(t, "14:00"),
	})

	assert.ErrorIs(t, err, ErrNotReschedulable)
}

func TestExecute_ClosedDay(t *testing.T) {
	f := newFixture(t)
	f.scheduleRepo.professionalWeek = domain.WeeklySchedule{
		time.Tuesday: {Closed: true},
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          newDate,
		StartTime:     mustTime(t, "14:00"),
	})

	assert.ErrorIs(t, err, ErrClosedOnDate)
}

func TestExecute_OutsideWindow(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          newDate,
		StartTime:     mustTime(t, "17:30"), // 17:30 + 60 минут выходит за 18:00
	})

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_UnassignedSkipsConflictCheck(t *testing.T) {
	// Бронирование без специалиста: проверка занятости не выполняется
	f := newFixture(t)
	f.reservationRepo.reservation.ProfessionalID = nil
	f.reservationRepo.busy = []domain.BusyInterval{
		{Start: 14 * 60, End: 15 * 60},
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          newDate,
		StartTime:     mustTime(t, "14:30"),
	})

	require.NoError(t, err)
	assert.Nil(t, f.reservationRepo.gotExcludeID)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(t)
	f.uc.timeProvider = &fixedTimeProvider{now: newDate.AddDate(0, 0, 1)}

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          newDate,
		StartTime:     mustTime(t, "14:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayTooLate(t *testing.T) {
	f := newFixture(t)
	f.uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2026, 2, 3, 13, 55, 0, 0, time.UTC),
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		Date:          newDate,
		StartTime:     mustTime(t, "14:00"),
	})

	assert.ErrorIs(t, err, ErrTooLateToBook)
}
