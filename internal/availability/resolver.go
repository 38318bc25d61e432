// Package availability содержит чистую логику доступности:
// резолвер эффективного рабочего окна на дату и генератор слотов.
// Пакет не обращается к БД и не хранит состояния - все входные данные
// передаются явно, результаты нигде не сохраняются.
package availability

import (
	"time"

	"github.com/agendly/booking-service/internal/domain"
)

// ResolveDayWindow возвращает эффективное рабочее окно на указанную дату.
//
// Правило приоритета:
//  1. Если у специалиста есть запись на этот день недели - она побеждает
//     целиком, включая её собственный флаг Closed.
//  2. Иначе действует запись бизнеса на этот день недели.
//  3. Если ни один источник не определяет день - день закрыт.
//
// Отсутствие расписания - валидный результат "закрыто", а не ошибка.
// override == nil означает, что у специалиста нет персонального расписания
// вовсе: расписание бизнеса действует для всех дней.
func ResolveDayWindow(business, override domain.WeeklySchedule, date time.Time) domain.DayWindow {
	weekday := date.Weekday()

	// Чтение из nil map безопасно, отдельная проверка override == nil не нужна
	if window, ok := override[weekday]; ok {
		return window
	}

	if window, ok := business[weekday]; ok {
		return window
	}

	return domain.DayWindow{Closed: true}
}
