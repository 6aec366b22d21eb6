package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// bundle каноническое представление входных данных.
// Пустой bundle (нет диапазона) означает пустой отчёт.
type bundle struct {
	dateRange       domain.DateRange
	timeslots       []domain.Timeslot           // Только активные, в порядке поступления
	bookingsByDay   map[string][]domain.Booking // Только подтверждённые и попавшие в диапазон
	requestDefault  int                         // 0 = не задано
	metadataDefault int                         // 0 = не найдено в бронированиях
	stats           Stats
}

// normalize приводит нетипизированный вход к каноническому виду.
// Некорректные отдельные записи пропускаются, вычисление не прерывается.
func normalize(in *Input) bundle {
	b := bundle{bookingsByDay: make(map[string][]domain.Booking)}

	// 1. Диапазон дат: без него результат пустой
	from, okFrom := ParseDay(in.From)
	to, okTo := ParseDay(in.To)
	if !okFrom || !okTo {
		b.stats.TimeslotsTotal = len(in.Timeslots)
		b.stats.BookingsTotal = len(in.Bookings)
		return b
	}
	b.dateRange = domain.DateRange{From: from, To: to}
	b.stats.RangeResolved = true

	// 2. Ёмкость по умолчанию уровня запроса
	if n, ok := toPositiveInt(in.DefaultCapacity); ok {
		b.requestDefault = n
	}

	// 3. Таймслоты
	b.timeslots = normalizeTimeslots(in.Timeslots, &b.stats)

	// 4. Бронирования
	for _, raw := range in.Bookings {
		b.stats.BookingsTotal++

		// Ёмкость из метаданных берём из первого бронирования, где она задана,
		// независимо от статуса
		if b.metadataDefault == 0 {
			if n, ok := toPositiveInt(raw.DefaultCapacity); ok {
				b.metadataDefault = n
			}
		}

		booking, ok := normalizeBooking(raw)
		if !ok {
			b.stats.BookingsMalformed++
			continue
		}
		if !booking.IsConfirmed() {
			b.stats.BookingsUnconfirmed++
			continue
		}
		if !b.dateRange.Contains(booking.Timestamp) {
			b.stats.BookingsOutOfRange++
			continue
		}

		key := booking.DayKey()
		b.bookingsByDay[key] = append(b.bookingsByDay[key], booking)
	}

	return b
}

// normalizeTimeslots оставляет только активные таймслоты с корректным id.
// При повторе id побеждает первое вхождение.
func normalizeTimeslots(raw []TimeslotInput, stats *Stats) []domain.Timeslot {
	result := make([]domain.Timeslot, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))

	for _, r := range raw {
		stats.TimeslotsTotal++

		if !isTrue(r.Active) {
			stats.TimeslotsInactive++
			continue
		}

		id, ok := toPositiveID(r.TimeslotID)
		if !ok {
			stats.TimeslotsMalformed++
			continue
		}
		if _, dup := seen[id]; dup {
			stats.TimeslotsMalformed++
			continue
		}
		seen[id] = struct{}{}

		ts := domain.Timeslot{
			ID:        id,
			Active:    true,
			StartTime: toTimeString(r.StartTime),
		}
		if n, ok := toPositiveInt(r.CapacityOverride); ok {
			ts.CapacityOverride = &n
		}
		if n, ok := toPositiveInt(r.Capacity); ok {
			ts.Capacity = &n
		}

		result = append(result, ts)
	}

	return result
}

// normalizeBooking возвращает false, если timeslot_id или timestamp не распознаны
func normalizeBooking(raw BookingInput) (domain.Booking, bool) {
	id, ok := toPositiveID(raw.TimeslotID)
	if !ok {
		return domain.Booking{}, false
	}

	ts, ok := ParseInstant(raw.Timestamp)
	if !ok {
		return domain.Booking{}, false
	}

	return domain.Booking{
		TimeslotID: id,
		Status:     toStatus(raw.Status),
		Timestamp:  ts,
		Day:        startOfDay(ts),
	}, true
}

// dayKey канонический ключ дня
func dayKey(d time.Time) string {
	return d.Format(domain.DateFormat)
}
