package calendar

import (
	"context"

	computeCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_calendar"
)

type ComputeCalendarUseCase interface {
	Execute(ctx context.Context, req *computeCalendar.Request) (*computeCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
