package domain

import "time"

// DateRange is an inclusive range of UTC calendar days
type DateRange struct {
	From time.Time // UTC midnight
	To   time.Time // UTC midnight
}

// IsEmpty returns true if the range produces no days
func (r DateRange) IsEmpty() bool {
	return r.From.IsZero() || r.To.IsZero() || r.From.After(r.To)
}

// End returns the exclusive end instant (midnight after To)
func (r DateRange) End() time.Time {
	return r.To.AddDate(0, 0, 1)
}

// Contains returns true if t falls within [From, To+24h)
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.End())
}

// Days returns the number of calendar days in the range
func (r DateRange) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.End().Sub(r.From).Hours()/24 + 0.5)
}

// DayAvailability is one entry of the availability report
type DayAvailability struct {
	Date           string `json:"date"`
	Available      bool   `json:"available"`
	RemainingSlots int    `json:"remaining_slots"`
}

// AvailabilityReport is the engine output
type AvailabilityReport struct {
	AvailableDays []DayAvailability `json:"available_days"`
}

// EmptyReport returns a report that serializes as {"available_days":[]}
func EmptyReport() *AvailabilityReport {
	return &AvailabilityReport{AvailableDays: []DayAvailability{}}
}
