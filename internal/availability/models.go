package availability

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// TimeslotInput сырое описание таймслота в том виде, в котором оно пришло из источника.
// Поля намеренно нетипизированы: числа могут прийти строками, флаги любыми значениями.
type TimeslotInput struct {
	TimeslotID       interface{} `json:"timeslot_id"`
	Active           interface{} `json:"active"`
	CapacityOverride interface{} `json:"capacity_override,omitempty"`
	Capacity         interface{} `json:"capacity,omitempty"`
	StartTime        interface{} `json:"start_time,omitempty"` // HH:MM, только для режима hour_level_limit
}

// BookingInput сырое бронирование.
// DefaultCapacity - ёмкость по умолчанию, встроенная в метаданные бронирования (если источник её отдаёт).
type BookingInput struct {
	TimeslotID      interface{} `json:"timeslot_id"`
	Status          interface{} `json:"status"`
	Timestamp       interface{} `json:"timestamp"`
	DefaultCapacity interface{} `json:"default_capacity,omitempty"`
}

// Input входные данные движка доступности
type Input struct {
	Timeslots []TimeslotInput
	Bookings  []BookingInput
	From      interface{} // YYYY-MM-DD или epoch milliseconds
	To        interface{} // YYYY-MM-DD или epoch milliseconds

	DefaultCapacity  interface{}         // Явная ёмкость по умолчанию уровня запроса (опционально)
	FallbackCapacity int                 // Последний уровень цепочки, 0 = domain.DefaultCapacity
	Mode             domain.CapacityMode // Пусто = per_timeslot_capacity
	DayLimit         int                 // Для day_level_limit, 0 = сумма ёмкостей таймслотов
	HourLimit        int                 // Для hour_level_limit, 0 = сумма ёмкостей таймслотов часа
}

// Stats счётчики нормализации, не влияют на отчёт
type Stats struct {
	TimeslotsTotal      int
	TimeslotsInactive   int
	TimeslotsMalformed  int // Некорректный или повторяющийся timeslot_id
	TimeslotsNoCapacity int
	BookingsTotal       int
	BookingsMalformed   int // Некорректный timeslot_id или timestamp
	BookingsUnconfirmed int
	BookingsOutOfRange  int
	BookingsUnmatched   int // Ссылаются на таймслот вне активного набора
	RangeResolved       bool
}

// DroppedTimeslots количество таймслотов, не попавших в активный набор
func (s Stats) DroppedTimeslots() int {
	return s.TimeslotsInactive + s.TimeslotsMalformed + s.TimeslotsNoCapacity
}

// DroppedBookings количество бронирований, не учтённых при подсчёте
func (s Stats) DroppedBookings() int {
	return s.BookingsMalformed + s.BookingsUnconfirmed + s.BookingsOutOfRange + s.BookingsUnmatched
}

// Result отчёт вместе с применённой политикой и статистикой
type Result struct {
	Report *domain.AvailabilityReport
	Policy domain.CapacityPolicy
	Range  domain.DateRange
	Stats  Stats
}
