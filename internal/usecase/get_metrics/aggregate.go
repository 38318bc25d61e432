package get_metrics

import (
	"sort"
	"strings"
	"time"

	"github.com/agendly/booking-service/internal/domain"
)

// Чистые функции агрегации: работают только с переданными данными,
// не обращаются к БД и не возвращают ошибок - пустой вход даёт нулевые
// метрики, а не ошибку.

// grossRevenue суммирует стоимость завершённых бронирований
func grossRevenue(reservations []*domain.Reservation) float64 {
	total := 0.0
	for _, r := range reservations {
		if r.IsCompleted() {
			total += r.Value
		}
	}
	return total
}

// countByStatus считает завершённые и отменённые бронирования
func countByStatus(reservations []*domain.Reservation) (completed, canceled int) {
	for _, r := range reservations {
		switch {
		case r.IsCompleted():
			completed++
		case r.IsCancelled():
			canceled++
		}
	}
	return completed, canceled
}

// netRevenue применяет формулу чистой выручки в зависимости от роли.
//
// Для специалиста его выручка - это комиссия от валовой.
// Для владельца с фильтром по специалисту - валовая минус комиссия
// этого специалиста. Для владельца без фильтра - валовая минус
// оплаченные расходы бизнеса; комиссии при этом не вычитаются.
func netRevenue(role domain.Role, hasProfessionalFilter bool, gross, commissionRate, paidExpenses float64) float64 {
	switch {
	case role == domain.RoleProfessional:
		return gross * commissionRate / 100
	case hasProfessionalFilter:
		return gross - gross*commissionRate/100
	default:
		return gross - paidExpenses
	}
}

// averageTicket возвращает средний чек, 0 при отсутствии завершённых
func averageTicket(gross float64, completedCount int) float64 {
	if completedCount == 0 {
		return 0
	}
	return gross / float64(completedCount)
}

// rate возвращает долю n от d, 0 при нулевом знаменателе
func rate(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// sumPaidExpenses суммирует только оплаченные расходы
func sumPaidExpenses(expenses []*domain.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		if e.Paid {
			total += e.Amount
		}
	}
	return total
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayOf возвращает понедельник недели, содержащей дату
func mondayOf(t time.Time) time.Time {
	d := dateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}

// buildSeries строит временной ряд выручки по завершённым бронированиям.
//
// Ряд покрывает весь запрошенный период: периоды без бронирований
// присутствуют с нулевыми значениями. При недельной гранулярности
// бронирование относится к последнему понедельнику, не позже его даты.
func buildSeries(reservations []*domain.Reservation, start, end time.Time, bucket Bucket) []SeriesPoint {
	var first time.Time
	var step func(time.Time) time.Time
	var keyOf func(time.Time) time.Time

	switch bucket {
	case BucketWeekly:
		first = mondayOf(start)
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }
		keyOf = mondayOf
	default:
		first = dateOnly(start)
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
		keyOf = dateOnly
	}

	last := keyOf(end)

	points := make([]SeriesPoint, 0)
	index := make(map[time.Time]int)
	for cursor := first; !cursor.After(last); cursor = step(cursor) {
		index[cursor] = len(points)
		points = append(points, SeriesPoint{PeriodStart: cursor})
	}

	for _, r := range reservations {
		if !r.IsCompleted() {
			continue
		}
		key := keyOf(r.BookingDate)
		i, ok := index[key]
		if !ok {
			continue
		}
		points[i].Gross += r.Value
		points[i].Count++
	}

	return points
}

// topServices считает частоту услуг среди завершённых бронирований.
//
// Денормализованная метка разбивается по разделителю, каждая услуга
// считается независимо. Сортировка по убыванию частоты стабильна:
// при равенстве сохраняется порядок первого появления.
func topServices(reservations []*domain.Reservation, limit int) []ServiceCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, r := range reservations {
		if !r.IsCompleted() || r.ServiceNames == "" {
			continue
		}
		for _, name := range strings.Split(r.ServiceNames, domain.ServiceNameSeparator) {
			if name == "" {
				continue
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	result := make([]ServiceCount, 0, len(order))
	for _, name := range order {
		result = append(result, ServiceCount{Name: name, Count: counts[name]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// professionalRanking строит рейтинг специалистов по валовой выручке.
//
// Учитываются только завершённые бронирования с назначенным
// специалистом. Специалисты без выручки попадают в рейтинг с нулём.
// Сортировка по убыванию выручки стабильна: при равенстве сохраняется
// порядок списка специалистов.
func professionalRanking(reservations []*domain.Reservation, professionals []*domain.Professional) []ProfessionalRevenue {
	gross := make(map[int64]float64)
	for _, r := range reservations {
		if !r.IsCompleted() || r.ProfessionalID == nil {
			continue
		}
		gross[*r.ProfessionalID] += r.Value
	}

	result := make([]ProfessionalRevenue, 0, len(professionals))
	for _, p := range professionals {
		result = append(result, ProfessionalRevenue{
			ProfessionalID: p.ID,
			Name:           p.Name,
			Gross:          gross[p.ID],
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Gross > result[j].Gross
	})

	return result
}
