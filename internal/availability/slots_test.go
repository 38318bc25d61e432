package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/types"
)

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestGenerateSlots_FullWindow(t *testing.T) {
	slots, err := GenerateSlots(Request{
		Window:             domain.DayWindow{Open: mustTime(t, "09:00"), Close: mustTime(t, "11:00")},
		DurationMinutes:    30,
		GranularityMinutes: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStrings(slots))
}

func TestGenerateSlots_DurationMustFitBeforeClose(t *testing.T) {
	slots, err := GenerateSlots(Request{
		Window:             domain.DayWindow{Open: mustTime(t, "09:00"), Close: mustTime(t, "11:00")},
		DurationMinutes:    60,
		GranularityMinutes: 30,
	})

	require.NoError(t, err)
	// 10:30 отбрасывается: 10:30+60 > 11:00
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotStrings(slots))
}

func TestGenerateSlots_BusyIntervalExcluded(t *testing.T) {
	slots, err := GenerateSlots(Request{
		Window:             domain.DayWindow{Open: mustTime(t, "09:00"), Close: mustTime(t, "12:00")},
		DurationMinutes:    30,
		GranularityMinutes: 30,
		Busy: []domain.BusyInterval{
			{Start: 10 * 60, End: 11 * 60}, // 10:00-11:00 занято
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, slotStrings(slots))
}

func TestGenerateSlots_BackToBackIsNotConflict(t *testing.T) {
	// Полуоткрытые интервалы: бронирование, заканчивающееся в 10:00,
	// не мешает слоту, начинающемуся в 10:00
	slots, err := GenerateSlots(Request{
		Window:             domain.DayWindow{Open: mustTime(t, "09:00"), Close: mustTime(t, "11:00")},
		DurationMinutes:    60,
		GranularityMinutes: 30,
		Busy: []domain.BusyInterval{
			{Start: 9 * 60, End: 10 * 60},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, slotStrings(slots))
}

func TestGenerateSlots_EarliestStartFiltersSameDay(t *testing.T) {
	earliest := mustTime(t, "10:15")
	slots, err := GenerateSlots(Request{
		Window:             domain.DayWindow{Open: mustTime(t, "09:00"), Close: mustTime(t, "12:00")},
		DurationMinutes:    30,
		GranularityMinutes: 30,
		EarliestStart:      &earliest,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, slotStrings(slots))
}

func TestGenerateSlots_ClosedDayYieldsEmpty(t *testing.T) {
	slots, err := GenerateSlots(Request{
		Window:             domain.DayWindow{Closed: true},
		DurationMinutes:    30,
		GranularityMinutes: 30,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGenerateSlots_OversizeDurationYieldsEmpty(t *testing.T) {
	slots, err := GenerateSlots(Request{
		Window:             domain.DayWindow{Open: mustTime(t, "09:00"), Close: mustTime(t, "10:00")},
		DurationMinutes:    120,
		GranularityMinutes: 30,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestEarliestSameDayStart(t *testing.T) {
	now := time.Date(2026, 1, 26, 14, 50, 0, 0, time.UTC)

	earliest := EarliestSameDayStart(now, domain.SameDayNoticeMinutes)

	assert.Equal(t, "15:00", earliest.String())
}

func TestHasConflict(t *testing.T) {
	busy := []domain.BusyInterval{{Start: 10 * 60, End: 11 * 60}}

	conflict, err := HasConflict(mustTime(t, "10:30"), 30, busy)
	require.NoError(t, err)
	assert.True(t, conflict)

	conflict, err = HasConflict(mustTime(t, "11:00"), 30, busy)
	require.NoError(t, err)
	assert.False(t, conflict)

	conflict, err = HasConflict(mustTime(t, "09:30"), 30, busy)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 1, 26, 23, 0, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(now.AddDate(0, 0, -1), now))
	assert.False(t, IsDateInPast(now, now))
	assert.False(t, IsDateInPast(now.AddDate(0, 0, 1), now))
}
