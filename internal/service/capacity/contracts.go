package capacity

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации ёмкости
type ConfigRepository interface {
	GetByOfferID(ctx context.Context, offerID *int64) (*domain.OfferCapacityConfig, error)
	GetConfigWithHierarchy(ctx context.Context, offerID int64) (*domain.OfferCapacityConfig, error)
	Upsert(ctx context.Context, config *domain.OfferCapacityConfig) (*domain.OfferCapacityConfig, error)
	Delete(ctx context.Context, offerID *int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
