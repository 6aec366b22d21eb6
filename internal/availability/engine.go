package availability

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Compute вычисляет отчёт о доступных днях.
// Чистая функция: не хранит состояние, не выполняет I/O и никогда не возвращает ошибку.
func Compute(in *Input) *domain.AvailabilityReport {
	return Evaluate(in).Report
}

// Evaluate то же, что Compute, но дополнительно возвращает применённую политику и статистику
// отброшенных записей (для логирования и метрик на уровне вызывающего).
func Evaluate(in *Input) Result {
	if in == nil {
		return Result{
			Report: domain.EmptyReport(),
			Policy: domain.CapacityPolicy{DefaultCapacity: domain.DefaultCapacity, Mode: domain.DefaultCapacityMode},
		}
	}

	// 1. Нормализация
	b := normalize(in)

	// 2. Политика ёмкости
	policy := resolvePolicy(in, b)

	result := Result{
		Report: domain.EmptyReport(),
		Policy: policy,
		Range:  b.dateRange,
		Stats:  b.stats,
	}

	if !b.stats.RangeResolved {
		return result
	}

	// 3. Эффективная ёмкость таймслотов
	timeslots := resolveTimeslots(b.timeslots, policy.DefaultCapacity, &result.Stats)
	result.Stats.BookingsUnmatched = countUnmatched(b.bookingsByDay, timeslots)
	if len(timeslots) == 0 {
		return result
	}

	// 4. Проход по дням
	result.Report.AvailableDays = computeDays(b.dateRange, timeslots, b.bookingsByDay, policy)

	return result
}

func countUnmatched(bookingsByDay map[string][]domain.Booking, timeslots []domain.ResolvedTimeslot) int {
	known := make(map[int64]struct{}, len(timeslots))
	for _, ts := range timeslots {
		known[ts.ID] = struct{}{}
	}

	count := 0
	for _, bookings := range bookingsByDay {
		for _, b := range bookings {
			if _, ok := known[b.TimeslotID]; !ok {
				count++
			}
		}
	}
	return count
}
