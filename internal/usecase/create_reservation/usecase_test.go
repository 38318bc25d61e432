package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/types"
)

// --- Фейки зависимостей ---

type fakeReservationRepo struct {
	busy    []domain.BusyInterval
	created *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	reservation.ID = 42
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = reservation.CreatedAt
	f.created = reservation
	return reservation, nil
}

func (f *fakeReservationRepo) ListBusyIntervals(_ context.Context, _ int64, _ time.Time, _ *int64) ([]domain.BusyInterval, error) {
	return f.busy, nil
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

type fakeStaffRepo struct {
	professional *domain.Professional
}

func (f *fakeStaffRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return f.professional, nil
}

type fakeCatalogRepo struct {
	services []*domain.CatalogService
}

func (f *fakeCatalogRepo) GetByIDs(_ context.Context, _ int64, _ []int64) ([]*domain.CatalogService, error) {
	return f.services, nil
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

// 2026-02-02 - понедельник
var bookingDate = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

func openWeek(t *testing.T) domain.WeeklySchedule {
	t.Helper()
	return domain.WeeklySchedule{
		time.Monday: {Open: mustTime(t, "09:00"), Close: mustTime(t, "18:00")},
	}
}

type fixture struct {
	uc              *UseCase
	reservationRepo *fakeReservationRepo
	scheduleRepo    *fakeScheduleRepo
	staffRepo       *fakeStaffRepo
	catalogRepo     *fakeCatalogRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		reservationRepo: &fakeReservationRepo{},
		scheduleRepo:    &fakeScheduleRepo{businessWeek: openWeek(t)},
		staffRepo: &fakeStaffRepo{professional: &domain.Professional{
			ID:     7,
			Name:   "Ana",
			Status: domain.ProfessionalActive,
		}},
		catalogRepo: &fakeCatalogRepo{services: []*domain.CatalogService{
			{ID: 1, Name: "Corte", DurationMinutes: 30, Price: 50},
			{ID: 2, Name: "Barba", DurationMinutes: 20, Price: 30},
		}},
	}
	f.uc = NewUseCase(f.reservationRepo, f.scheduleRepo, f.staffRepo, f.catalogRepo, &fakeTxManager{}, noopLogger{})
	// Бронируем заранее, за неделю до даты
	f.uc.timeProvider = &fixedTimeProvider{now: bookingDate.AddDate(0, 0, -7)}
	return f
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		BusinessID:     1,
		ClientID:       100,
		ProfessionalID: 7,
		ServiceIDs:     []int64{1, 2},
		Date:           bookingDate,
		StartTime:      mustTime(t, "10:00"),
	}
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, 50, resp.DurationMinutes)
	assert.Equal(t, 80.0, resp.Value)
	assert.Equal(t, "Corte, Barba", resp.ServiceNames)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	require.NotNil(t, resp.ProfessionalID)
	assert.Equal(t, int64(7), *resp.ProfessionalID)
}

func TestExecute_ConfirmedFlagSkipsPending(t *testing.T) {
	f := newFixture(t)
	req := validRequest(t)
	req.Confirmed = true

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_MinDurationApplied(t *testing.T) {
	f := newFixture(t)
	f.catalogRepo.services = []*domain.CatalogService{
		{ID: 1, Name: "Sobrancelha", DurationMinutes: 15, Price: 20},
	}
	req := validRequest(t)
	req.ServiceIDs = []int64{1}

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.MinReservationDurationMinutes, resp.DurationMinutes)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture(t)
	f.reservationRepo.busy = []domain.BusyInterval{
		{Start: 10 * 60, End: 11 * 60},
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.reservationRepo.created)
}

func TestExecute_BackToBackSlotAllowed(t *testing.T) {
	// Занято 09:00-10:00; полуоткрытые интервалы позволяют начать ровно в 10:00
	f := newFixture(t)
	f.reservationRepo.busy = []domain.BusyInterval{
		{Start: 9 * 60, End: 10 * 60},
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
}

func TestExecute_ClosedDay(t *testing.T) {
	f := newFixture(t)
	f.scheduleRepo.professionalWeek = domain.WeeklySchedule{
		time.Monday: {Closed: true},
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrClosedOnDate)
}

func TestExecute_OutsideWindow(t *testing.T) {
	f := newFixture(t)
	req := validRequest(t)
	req.StartTime = mustTime(t, "17:30") // 17:30 + 50 минут выходит за 18:00

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_AwayProfessional(t *testing.T) {
	f := newFixture(t)
	f.staffRepo.professional.Status = domain.ProfessionalAway

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrProfessionalNotBookable)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(t)
	f.uc.timeProvider = &fixedTimeProvider{now: bookingDate.AddDate(0, 0, 1)}

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayTooLate(t *testing.T) {
	f := newFixture(t)
	// Сейчас 09:55 того же дня, буфер 10 минут не позволяет бронь на 10:00
	f.uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2026, 2, 2, 9, 55, 0, 0, time.UTC),
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_SameDayWithEnoughNotice(t *testing.T) {
	f := newFixture(t)
	f.uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2026, 2, 2, 9, 30, 0, 0, time.UTC),
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"без услуг", func(r *Request) { r.ServiceIDs = nil }},
		{"нулевой бизнес", func(r *Request) { r.BusinessID = 0 }},
		{"нулевой клиент", func(r *Request) { r.ClientID = 0 }},
		{"нулевой специалист", func(r *Request) { r.ProfessionalID = 0 }},
		{"без даты", func(r *Request) { r.Date = time.Time{} }},
		{"без времени", func(r *Request) { r.StartTime = types.TimeString("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
