package get_capacity_config

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/capacity/models"
)

type CapacityConfigService interface {
	Get(ctx context.Context, offerID *int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
