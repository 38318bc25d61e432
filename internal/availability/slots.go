package availability

import (
	"time"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/types"
)

// Request параметры генерации слотов на один день
type Request struct {
	Window             domain.DayWindow      // эффективное рабочее окно (из ResolveDayWindow)
	DurationMinutes    int                   // запрошенная суммарная длительность (> 0)
	GranularityMinutes int                   // шаг между кандидатами времени начала
	Busy               []domain.BusyInterval // занятые интервалы специалиста на эту дату
	// EarliestStart минимально допустимое время начала.
	// Задаётся только для бронирований на сегодня (текущее время + буфер),
	// nil - без ограничения.
	EarliestStart *types.TimeString
}

// GenerateSlots перечисляет кандидатов времени начала внутри рабочего окна.
//
// Кандидат принимается, если его интервал [start, start+duration) целиком
// лежит в [open, close), не пересекает ни один занятый интервал
// (полуоткрытая проверка: бронирование, заканчивающееся ровно в момент
// начала другого, конфликтом не считается) и начинается не раньше
// EarliestStart, если тот задан.
//
// Закрытый день и длительность, не помещающаяся в окно, дают пустой
// результат - это валидный ответ, а не ошибка.
func GenerateSlots(req Request) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	if req.Window.Closed {
		return slots, nil
	}

	openMin, err := req.Window.Open.Minutes()
	if err != nil {
		return nil, err
	}
	closeMin, err := req.Window.Close.Minutes()
	if err != nil {
		return nil, err
	}

	earliest := -1
	if req.EarliestStart != nil {
		earliest, err = req.EarliestStart.Minutes()
		if err != nil {
			return nil, err
		}
	}

	for start := openMin; start+req.DurationMinutes <= closeMin; start += req.GranularityMinutes {
		if start < earliest {
			continue
		}
		if overlapsAny(start, start+req.DurationMinutes, req.Busy) {
			continue
		}
		slots = append(slots, types.NewTimeStringFromMinutes(start))
	}

	return slots, nil
}

// EarliestSameDayStart возвращает минимально допустимое время начала
// для бронирования на сегодня: текущее время плюс буфер
func EarliestSameDayStart(now time.Time, noticeMinutes int) types.TimeString {
	buffered := now.Add(time.Duration(noticeMinutes) * time.Minute)
	return types.NewTimeString(buffered)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// HasConflict проверяет, пересекается ли интервал [start, start+duration)
// хотя бы с одним занятым интервалом
func HasConflict(start types.TimeString, durationMinutes int, busy []domain.BusyInterval) (bool, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return false, err
	}
	return overlapsAny(startMin, startMin+durationMinutes, busy), nil
}

func overlapsAny(start, end int, busy []domain.BusyInterval) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
