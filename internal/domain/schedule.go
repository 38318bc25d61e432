package domain

import (
	"time"

	"github.com/agendly/booking-service/pkg/types"
)

// DayWindow represents the effective open/close window for one calendar day
// If Closed is true, Open and Close are ignored
type DayWindow struct {
	Closed bool
	Open   types.TimeString
	Close  types.TimeString
}

// WeeklySchedule maps weekdays to their working windows.
// An absent weekday entry means the schedule does not define that day:
// for a business it reads as closed, for a professional override it means
// "fall back to the business schedule". A nil map defines no day at all.
type WeeklySchedule map[time.Weekday]DayWindow

// BusyInterval занятый интервал [Start, End) в минутах от полуночи
type BusyInterval struct {
	Start int
	End   int
}

// Overlaps returns true if [start, end) intersects the busy interval.
// Intervals are half-open: a reservation ending exactly when another
// begins is not a conflict.
func (b BusyInterval) Overlaps(start, end int) bool {
	return start < b.End && end > b.Start
}
