package delete_capacity_config

import "context"

type CapacityConfigService interface {
	Delete(ctx context.Context, offerID *int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
