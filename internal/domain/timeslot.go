package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Timeslot represents a normalized bookable timeslot of an offer
type Timeslot struct {
	ID               int64
	Active           bool
	CapacityOverride *int              // NULL = no override
	Capacity         *int              // NULL = use policy default
	StartTime        *types.TimeString // Only used by the hour-level capacity mode
}

// HasOverride returns true if the timeslot declares a positive capacity override
func (t *Timeslot) HasOverride() bool {
	return t.CapacityOverride != nil && *t.CapacityOverride > 0
}

// HasCapacity returns true if the timeslot declares a positive explicit capacity
func (t *Timeslot) HasCapacity() bool {
	return t.Capacity != nil && *t.Capacity > 0
}

// ResolvedTimeslot is an active timeslot with its effective per-day capacity
type ResolvedTimeslot struct {
	ID        int64
	Capacity  int
	StartTime *types.TimeString
}
