package domain

import "time"

// CapacityMode selects how a day's headline remaining capacity is aggregated
type CapacityMode string

const (
	ModePerTimeslotCapacity CapacityMode = "per_timeslot_capacity"
	ModeDayLevelLimit       CapacityMode = "day_level_limit"
	ModeHourLevelLimit      CapacityMode = "hour_level_limit"
)

// ParseCapacityMode returns the mode for s; unknown values fall back to per-timeslot capacity
func ParseCapacityMode(s string) CapacityMode {
	switch CapacityMode(s) {
	case ModeDayLevelLimit:
		return ModeDayLevelLimit
	case ModeHourLevelLimit:
		return ModeHourLevelLimit
	default:
		return ModePerTimeslotCapacity
	}
}

// IsValid returns true if the mode is one of the known modes
func (m CapacityMode) IsValid() bool {
	return m == ModePerTimeslotCapacity || m == ModeDayLevelLimit || m == ModeHourLevelLimit
}

// CapacityPolicy is resolved once per request and applies to every timeslot
type CapacityPolicy struct {
	DefaultCapacity int
	Mode            CapacityMode
	DayLimit        int // 0 = sum of timeslot capacities
	HourLimit       int
}

// OfferCapacityConfig represents the stored capacity configuration.
// Supports hierarchical configuration:
// 1. Offer-specific (offer_id)
// 2. Global (NULL)
type OfferCapacityConfig struct {
	ID              int64
	OfferID         *int64 // NULL = config for all offers
	DefaultCapacity int
	Mode            CapacityMode
	DayLimit        int
	HourLimit       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsGlobalConfig returns true if this is the global configuration
func (c *OfferCapacityConfig) IsGlobalConfig() bool {
	return c.OfferID == nil
}

// Policy converts the stored configuration into a request policy
func (c *OfferCapacityConfig) Policy() CapacityPolicy {
	return CapacityPolicy{
		DefaultCapacity: c.DefaultCapacity,
		Mode:            ParseCapacityMode(string(c.Mode)),
		DayLimit:        c.DayLimit,
		HourLimit:       c.HourLimit,
	}
}
