package get_available_days

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Request запрос доступных дней оффера
type Request struct {
	OfferID         int64
	From            string // YYYY-MM-DD или epoch milliseconds
	To              string // YYYY-MM-DD или epoch milliseconds
	DefaultCapacity *int   // Переопределение ёмкости по умолчанию (опционально)
}

// Response отчёт о доступных днях оффера
type Response struct {
	OfferID int64
	Range   domain.DateRange
	Policy  domain.CapacityPolicy
	Report  *domain.AvailabilityReport
	Cached  bool
}
