package availability

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// dayRemainingFunc вычисляет итоговый остаток ёмкости дня по его бронированиям
type dayRemainingFunc func(bookings []domain.Booking) int

// computeDays проходит по каждому дню диапазона [From, To] (UTC, включительно)
// и оставляет только дни с положительным остатком
func computeDays(
	dateRange domain.DateRange,
	timeslots []domain.ResolvedTimeslot,
	bookingsByDay map[string][]domain.Booking,
	policy domain.CapacityPolicy,
) []domain.DayAvailability {
	days := make([]domain.DayAvailability, 0)

	if len(timeslots) == 0 || dateRange.IsEmpty() {
		return days
	}

	remainingFor := remainingFuncFor(timeslots, policy)
	if remainingFor == nil {
		return days
	}

	for d := dateRange.From; !d.After(dateRange.To); d = d.AddDate(0, 0, 1) {
		key := dayKey(d)

		remaining := remainingFor(bookingsByDay[key])
		if remaining <= 0 {
			continue
		}

		days = append(days, domain.DayAvailability{
			Date:           key,
			Available:      true,
			RemainingSlots: remaining,
		})
	}

	return days
}

// remainingFuncFor выбирает правило агрегации по режиму политики.
// nil означает, что в этом режиме ни один день не может быть доступен.
func remainingFuncFor(timeslots []domain.ResolvedTimeslot, policy domain.CapacityPolicy) dayRemainingFunc {
	switch policy.Mode {
	case domain.ModeDayLevelLimit:
		return dayLevelRemaining(timeslots, policy.DayLimit)
	case domain.ModeHourLevelLimit:
		return hourLevelRemaining(timeslots, policy.HourLimit)
	default:
		return perTimeslotRemaining(timeslots)
	}
}

// perTimeslotRemaining максимум (capacity - used) по активным таймслотам.
// Бронирования на неизвестные таймслоты не учитываются.
func perTimeslotRemaining(timeslots []domain.ResolvedTimeslot) dayRemainingFunc {
	return func(bookings []domain.Booking) int {
		used := make(map[int64]int, len(bookings))
		for _, b := range bookings {
			used[b.TimeslotID]++
		}

		best := 0
		for i, ts := range timeslots {
			remaining := ts.Capacity - used[ts.ID]
			if i == 0 || remaining > best {
				best = remaining
			}
		}
		return best
	}
}

// dayLevelRemaining единый дневной лимит минус все подтверждённые бронирования дня.
// limit <= 0 означает сумму ёмкостей таймслотов.
func dayLevelRemaining(timeslots []domain.ResolvedTimeslot, limit int) dayRemainingFunc {
	active := make(map[int64]struct{}, len(timeslots))
	total := 0
	for _, ts := range timeslots {
		active[ts.ID] = struct{}{}
		total = addCapacity(total, ts.Capacity)
	}
	if limit <= 0 {
		limit = total
	}

	return func(bookings []domain.Booking) int {
		used := 0
		for _, b := range bookings {
			if _, ok := active[b.TimeslotID]; ok {
				used++
			}
		}
		return limit - used
	}
}

// hourLevelRemaining лимит на час суток. Час открыт, если в нём начинается хотя бы
// один активный таймслот; бронирование относится к часу начала своего таймслота.
// limit <= 0 означает сумму ёмкостей таймслотов этого часа.
func hourLevelRemaining(timeslots []domain.ResolvedTimeslot, limit int) dayRemainingFunc {
	hourOf := make(map[int64]int, len(timeslots))
	hourCapacity := make(map[int]int)
	for _, ts := range timeslots {
		if ts.StartTime == nil {
			continue
		}
		h := ts.StartTime.Hour()
		hourOf[ts.ID] = h
		hourCapacity[h] = addCapacity(hourCapacity[h], ts.Capacity)
	}
	if len(hourCapacity) == 0 {
		return nil
	}
	if limit > 0 {
		for h := range hourCapacity {
			hourCapacity[h] = limit
		}
	}

	return func(bookings []domain.Booking) int {
		used := make(map[int]int)
		for _, b := range bookings {
			h, ok := hourOf[b.TimeslotID]
			if !ok {
				continue
			}
			used[h]++
		}

		best, first := 0, true
		for h, capacity := range hourCapacity {
			remaining := capacity - used[h]
			if first || remaining > best {
				best, first = remaining, false
			}
		}
		return best
	}
}
