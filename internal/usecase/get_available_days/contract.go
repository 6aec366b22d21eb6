package get_available_days

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	reportCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/report"
)

// OfferDataSource источник таймслотов и бронирований оффера (БД сервиса или внешний сервис)
type OfferDataSource interface {
	GetTimeslots(ctx context.Context, offerID int64) ([]availability.TimeslotInput, error)
	// GetBookings получает бронирования в полуинтервале [from, to)
	GetBookings(ctx context.Context, offerID int64, from, to time.Time) ([]availability.BookingInput, error)
}

// CapacityConfigRepository интерфейс репозитория конфигурации ёмкости
type CapacityConfigRepository interface {
	// GetConfigWithHierarchy получает конфигурацию с учетом иерархии (оффер → глобальная)
	GetConfigWithHierarchy(ctx context.Context, offerID int64) (*domain.OfferCapacityConfig, error)
}

// ReportCache кеш готовых отчётов вместе с итоговой политикой
type ReportCache interface {
	Key(offerID int64, dateRange domain.DateRange, policy domain.CapacityPolicy) string
	Get(ctx context.Context, key string) (*reportCache.Entry, error)
	Set(ctx context.Context, key string, entry *reportCache.Entry) error
}

// Metrics интерфейс метрик
type Metrics interface {
	ObserveReport(mode string, days int, droppedTimeslots int, droppedBookings int)
	ObserveCache(result string)
	ObserveUpstreamError(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
