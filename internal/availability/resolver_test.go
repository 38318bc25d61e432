package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/types"
)

func mustTime(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

// 2026-01-26 - понедельник
var monday = time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)

func TestResolveDayWindow_BusinessOnly(t *testing.T) {
	business := domain.WeeklySchedule{
		time.Monday: {Open: mustTime(t, "09:00"), Close: mustTime(t, "18:00")},
	}

	window := ResolveDayWindow(business, nil, monday)

	assert.False(t, window.Closed)
	assert.Equal(t, "09:00", window.Open.String())
	assert.Equal(t, "18:00", window.Close.String())
}

func TestResolveDayWindow_OverrideWins(t *testing.T) {
	business := domain.WeeklySchedule{
		time.Monday: {Open: mustTime(t, "09:00"), Close: mustTime(t, "18:00")},
	}
	override := domain.WeeklySchedule{
		time.Monday: {Open: mustTime(t, "12:00"), Close: mustTime(t, "20:00")},
	}

	window := ResolveDayWindow(business, override, monday)

	assert.Equal(t, "12:00", window.Open.String())
	assert.Equal(t, "20:00", window.Close.String())
}

func TestResolveDayWindow_OverrideClosedWinsOverOpenBusiness(t *testing.T) {
	// Выходной специалиста перекрывает рабочий день бизнеса целиком
	business := domain.WeeklySchedule{
		time.Monday: {Open: mustTime(t, "09:00"), Close: mustTime(t, "18:00")},
	}
	override := domain.WeeklySchedule{
		time.Monday: {Closed: true},
	}

	window := ResolveDayWindow(business, override, monday)

	assert.True(t, window.Closed)
}

func TestResolveDayWindow_OverrideAbsentFallsBackToBusiness(t *testing.T) {
	business := domain.WeeklySchedule{
		time.Monday: {Open: mustTime(t, "09:00"), Close: mustTime(t, "18:00")},
	}
	override := domain.WeeklySchedule{
		time.Tuesday: {Closed: true},
	}

	window := ResolveDayWindow(business, override, monday)

	assert.False(t, window.Closed)
	assert.Equal(t, "09:00", window.Open.String())
}

func TestResolveDayWindow_NoScheduleMeansClosed(t *testing.T) {
	window := ResolveDayWindow(nil, nil, monday)

	assert.True(t, window.Closed)
}
