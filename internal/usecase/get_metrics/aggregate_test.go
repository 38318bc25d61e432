package get_metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/ptr"
)

func date(day int) time.Time {
	return time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC)
}

func completedReservation(day int, value float64, services string, professionalID int64) *domain.Reservation {
	return &domain.Reservation{
		BookingDate:    date(day),
		Status:         domain.StatusCompleted,
		Value:          value,
		ServiceNames:   services,
		ProfessionalID: ptr.Ptr(professionalID),
	}
}

func canceledReservation(day int) *domain.Reservation {
	return &domain.Reservation{
		BookingDate: date(day),
		Status:      domain.StatusCanceled,
	}
}

func TestGrossRevenue_OnlyCompletedCount(t *testing.T) {
	reservations := []*domain.Reservation{
		completedReservation(5, 100, "Corte", 1),
		completedReservation(6, 50, "Barba", 1),
		canceledReservation(7),
		{BookingDate: date(8), Status: domain.StatusPending, Value: 999},
		{BookingDate: date(9), Status: domain.StatusConfirmed, Value: 999},
	}

	assert.Equal(t, 150.0, grossRevenue(reservations))
}

func TestNetRevenue_ProfessionalRole(t *testing.T) {
	// Специалист получает свою комиссию от валовой выручки
	net := netRevenue(domain.RoleProfessional, true, 200, 40, 0)
	assert.Equal(t, 80.0, net)
}

func TestNetRevenue_OwnerWithProfessionalFilter(t *testing.T) {
	// Владелец при фильтре по специалисту видит валовую минус комиссию
	net := netRevenue(domain.RoleOwner, true, 200, 40, 0)
	assert.Equal(t, 120.0, net)
}

func TestNetRevenue_OwnerBusinessWide(t *testing.T) {
	// Сводка по бизнесу: вычитаются оплаченные расходы, комиссии не трогаются
	net := netRevenue(domain.RoleOwner, false, 200, 40, 75)
	assert.Equal(t, 125.0, net)
}

func TestAverageTicket_ZeroOnEmpty(t *testing.T) {
	assert.Equal(t, 0.0, averageTicket(0, 0))
	assert.Equal(t, 50.0, averageTicket(150, 3))
}

func TestRates_ZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, rate(0, 0))
	assert.Equal(t, 0.25, rate(1, 4))
}

func TestRates_SumToOne(t *testing.T) {
	reservations := []*domain.Reservation{
		completedReservation(5, 100, "Corte", 1),
		completedReservation(6, 100, "Corte", 1),
		completedReservation(7, 100, "Corte", 1),
		canceledReservation(8),
	}

	completed, canceled := countByStatus(reservations)
	require.Equal(t, 3, completed)
	require.Equal(t, 1, canceled)

	cancellation := rate(canceled, completed+canceled)
	attendance := rate(completed, completed+canceled)
	assert.Equal(t, 0.25, cancellation)
	assert.Equal(t, 0.75, attendance)
	assert.Equal(t, 1.0, cancellation+attendance)
}

func TestSumPaidExpenses_IgnoresUnpaid(t *testing.T) {
	expenses := []*domain.Expense{
		{Amount: 30, Paid: true},
		{Amount: 70, Paid: false},
		{Amount: 20, Paid: true},
	}

	assert.Equal(t, 50.0, sumPaidExpenses(expenses))
}

func TestBuildSeries_DailyCoversWholeRange(t *testing.T) {
	reservations := []*domain.Reservation{
		completedReservation(5, 100, "Corte", 1),
		completedReservation(5, 50, "Barba", 1),
		completedReservation(7, 25, "Corte", 1),
		canceledReservation(6),
	}

	series := buildSeries(reservations, date(5), date(8), BucketDaily)

	require.Len(t, series, 4)
	assert.Equal(t, date(5), series[0].PeriodStart)
	assert.Equal(t, 150.0, series[0].Gross)
	assert.Equal(t, 2, series[0].Count)
	// День без завершённых бронирований присутствует с нулями
	assert.Equal(t, 0.0, series[1].Gross)
	assert.Equal(t, 0, series[1].Count)
	assert.Equal(t, 25.0, series[2].Gross)
	assert.Equal(t, 0.0, series[3].Gross)
}

func TestBuildSeries_WeeklyAlignsToMonday(t *testing.T) {
	// 2026-01-05 - понедельник; 2026-01-14 - среда следующей недели
	reservations := []*domain.Reservation{
		completedReservation(6, 100, "Corte", 1),  // вт первой недели
		completedReservation(11, 40, "Corte", 1),  // вс первой недели
		completedReservation(14, 60, "Barba", 1),  // ср второй недели
	}

	series := buildSeries(reservations, date(7), date(14), BucketWeekly)

	require.Len(t, series, 2)
	assert.Equal(t, date(5), series[0].PeriodStart)
	assert.Equal(t, date(12), series[1].PeriodStart)
	// Бронирование от 6-го попадает в понедельник 5-го, хотя период начинается 7-го
	assert.Equal(t, 140.0, series[0].Gross)
	assert.Equal(t, 60.0, series[1].Gross)
}

func TestTopServices_SplitsAndRanks(t *testing.T) {
	reservations := []*domain.Reservation{
		completedReservation(5, 100, "Corte, Barba", 1),
		completedReservation(6, 100, "Corte", 1),
		completedReservation(7, 100, "Corte, Sobrancelha", 1),
		canceledReservation(8), // отменённые не учитываются
	}

	top := topServices(reservations, domain.TopServicesLimit)

	require.Len(t, top, 3)
	assert.Equal(t, ServiceCount{Name: "Corte", Count: 3}, top[0])
	// При равенстве частот сохраняется порядок первого появления
	assert.Equal(t, ServiceCount{Name: "Barba", Count: 1}, top[1])
	assert.Equal(t, ServiceCount{Name: "Sobrancelha", Count: 1}, top[2])
}

func TestTopServices_LimitApplied(t *testing.T) {
	reservations := []*domain.Reservation{
		completedReservation(5, 0, "A, B, C, D, E, F, G", 1),
	}

	top := topServices(reservations, domain.TopServicesLimit)

	assert.Len(t, top, domain.TopServicesLimit)
}

func TestProfessionalRanking_SortedByRevenue(t *testing.T) {
	professionals := []*domain.Professional{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bruno"},
		{ID: 3, Name: "Clara"},
	}
	reservations := []*domain.Reservation{
		completedReservation(5, 100, "Corte", 2),
		completedReservation(6, 50, "Corte", 1),
		completedReservation(7, 200, "Corte", 2),
	}

	ranking := professionalRanking(reservations, professionals)

	require.Len(t, ranking, 3)
	assert.Equal(t, int64(2), ranking[0].ProfessionalID)
	assert.Equal(t, 300.0, ranking[0].Gross)
	assert.Equal(t, int64(1), ranking[1].ProfessionalID)
	// Специалист без выручки присутствует с нулём
	assert.Equal(t, int64(3), ranking[2].ProfessionalID)
	assert.Equal(t, 0.0, ranking[2].Gross)
}

func TestAggregation_EmptyInputAllZeroes(t *testing.T) {
	assert.Equal(t, 0.0, grossRevenue(nil))
	completed, canceled := countByStatus(nil)
	assert.Zero(t, completed)
	assert.Zero(t, canceled)
	assert.Empty(t, topServices(nil, domain.TopServicesLimit))

	series := buildSeries(nil, date(5), date(5), BucketDaily)
	require.Len(t, series, 1)
	assert.Equal(t, 0.0, series[0].Gross)
}
