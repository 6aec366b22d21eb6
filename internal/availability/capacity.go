package availability

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// resolvePolicy собирает политику ёмкости запроса.
// Ёмкость по умолчанию: явная уровня запроса → из метаданных бронирований → FallbackCapacity → domain.DefaultCapacity.
func resolvePolicy(in *Input, b bundle) domain.CapacityPolicy {
	def := domain.DefaultCapacity
	switch {
	case b.requestDefault > 0:
		def = b.requestDefault
	case b.metadataDefault > 0:
		def = b.metadataDefault
	case in.FallbackCapacity > 0:
		def = in.FallbackCapacity
	}

	policy := domain.CapacityPolicy{
		DefaultCapacity: def,
		Mode:            domain.ParseCapacityMode(string(in.Mode)),
	}
	if in.DayLimit > 0 {
		policy.DayLimit = in.DayLimit
	}
	if in.HourLimit > 0 {
		policy.HourLimit = in.HourLimit
	}

	return policy
}

// resolveCapacity первое положительное значение: override → capacity → default
func resolveCapacity(ts domain.Timeslot, defaultCapacity int) int {
	switch {
	case ts.HasOverride():
		return *ts.CapacityOverride
	case ts.HasCapacity():
		return *ts.Capacity
	default:
		return defaultCapacity
	}
}

// resolveTimeslots вычисляет эффективную ёмкость каждого активного таймслота.
// Таймслоты без положительной ёмкости исключаются.
func resolveTimeslots(timeslots []domain.Timeslot, defaultCapacity int, stats *Stats) []domain.ResolvedTimeslot {
	result := make([]domain.ResolvedTimeslot, 0, len(timeslots))

	for _, ts := range timeslots {
		if !ts.Active {
			stats.TimeslotsInactive++
			continue
		}

		capacity := resolveCapacity(ts, defaultCapacity)
		if capacity <= 0 {
			stats.TimeslotsNoCapacity++
			continue
		}

		result = append(result, domain.ResolvedTimeslot{
			ID:        ts.ID,
			Capacity:  capacity,
			StartTime: ts.StartTime,
		})
	}

	return result
}
