package domain

// Default configuration values
const (
	DefaultCapacity     = 1
	DefaultCapacityMode = ModePerTimeslotCapacity
	DefaultMaxRangeDays = 366
)

// Business validation constants
const (
	MinCapacity  = 1
	MaxCapacity  = 10000
	MinDayLimit  = 0 // 0 = derived from timeslot capacities
	MaxDayLimit  = 100000
	MinHourLimit = 0
	MaxHourLimit = 10000
	MaxRangeDays = 3660
)

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"
