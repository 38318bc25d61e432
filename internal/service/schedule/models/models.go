package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/types"
)

var (
	// ErrInvalidDay возвращается при некорректном описании дня недели
	ErrInvalidDay = errors.New("invalid day schedule")
)

// weekdayKeys соответствие JSON ключей дням недели
var weekdayKeys = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// DayWindow описание рабочего окна одного дня
type DayWindow struct {
	Closed bool   `json:"closed"`
	Open   string `json:"open,omitempty"`  // "09:00"
	Close  string `json:"close,omitempty"` // "18:00"
}

// WeekRequest запрос на замену недельного расписания
// Ключи - имена дней недели в нижнем регистре; отсутствующий день
// означает, что расписание его не определяет
type WeekRequest struct {
	Days map[string]DayWindow `json:"days"`
}

// WeekResponse недельное расписание в ответе
type WeekResponse struct {
	Days map[string]DayWindow `json:"days"`
}

// ToDomainWeek конвертирует запрос в domain.WeeklySchedule с валидацией
func (r *WeekRequest) ToDomainWeek() (domain.WeeklySchedule, error) {
	week := make(domain.WeeklySchedule, len(r.Days))

	for key, day := range r.Days {
		weekday, ok := weekdayKeys[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidDay, key)
		}

		if day.Closed {
			week[weekday] = domain.DayWindow{Closed: true}
			continue
		}

		open, err := types.NewTimeStringFromString(day.Open)
		if err != nil {
			return nil, fmt.Errorf("%w: %s open time: %v", ErrInvalidDay, key, err)
		}
		closeTime, err := types.NewTimeStringFromString(day.Close)
		if err != nil {
			return nil, fmt.Errorf("%w: %s close time: %v", ErrInvalidDay, key, err)
		}
		if !open.IsBefore(closeTime) {
			return nil, fmt.Errorf("%w: %s open time must be before close time", ErrInvalidDay, key)
		}

		week[weekday] = domain.DayWindow{Open: open, Close: closeTime}
	}

	return week, nil
}

// FromDomainWeek конвертирует domain.WeeklySchedule в DTO
func FromDomainWeek(week domain.WeeklySchedule) *WeekResponse {
	resp := &WeekResponse{Days: make(map[string]DayWindow, len(week))}

	for weekday, window := range week {
		day := DayWindow{Closed: window.Closed}
		if !window.Closed {
			day.Open = window.Open.String()
			day.Close = window.Close.String()
		}
		resp.Days[weekdayNames[weekday]] = day
	}

	return resp
}
