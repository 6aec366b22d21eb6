package compute_calendar

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request данные для расчёта, переданные целиком в теле запроса
type Request struct {
	Timeslots       []availability.TimeslotInput
	Bookings        []availability.BookingInput
	From            interface{}
	To              interface{}
	DefaultCapacity interface{} // nil = не задано
	Mode            string      // Пусто = режим из конфигурации
}

// Response отчёт о доступных днях
type Response struct {
	Report *domain.AvailabilityReport
	Policy domain.CapacityPolicy
}
