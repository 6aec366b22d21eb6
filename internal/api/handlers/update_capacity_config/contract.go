package update_capacity_config

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/capacity/models"
)

type CapacityConfigService interface {
	Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
