package compute_calendar

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UseCase расчёт доступных дней по данным, переданным в запросе
type UseCase struct {
	defaults     domain.CapacityPolicy
	maxRangeDays int
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// defaults задаёт режим и лимиты, если запрос их не переопределяет.
func NewUseCase(defaults domain.CapacityPolicy, maxRangeDays int, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		defaults:     defaults,
		maxRangeDays: maxRangeDays,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет расчёт
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputeCalendar: timeslots=%d, bookings=%d, from=%v, to=%v",
		len(req.Timeslots), len(req.Bookings), req.From, req.To)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ComputeCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Ограничение длины диапазона
	if err := validateRange(req.From, req.To, uc.maxRangeDays); err != nil {
		uc.logger.Warn("ComputeCalendar: %v", err)
		return nil, err
	}

	// 3. Режим: из запроса или из конфигурации
	mode := uc.defaults.Mode
	if req.Mode != "" {
		mode = domain.ParseCapacityMode(req.Mode)
	}

	// 4. Расчёт
	result := availability.Evaluate(&availability.Input{
		Timeslots:        req.Timeslots,
		Bookings:         req.Bookings,
		From:             req.From,
		To:               req.To,
		DefaultCapacity:  req.DefaultCapacity,
		FallbackCapacity: uc.defaults.DefaultCapacity,
		Mode:             mode,
		DayLimit:         uc.defaults.DayLimit,
		HourLimit:        uc.defaults.HourLimit,
	})

	if !result.Stats.RangeResolved {
		uc.logger.Warn("ComputeCalendar: date range not recognized (from=%v, to=%v), returning empty report",
			req.From, req.To)
	}
	if dropped := result.Stats.DroppedTimeslots() + result.Stats.DroppedBookings(); dropped > 0 {
		uc.logger.Info("ComputeCalendar: skipped records: timeslots=%d, bookings=%d",
			result.Stats.DroppedTimeslots(), result.Stats.DroppedBookings())
	}

	uc.metrics.ObserveReport(string(result.Policy.Mode), len(result.Report.AvailableDays),
		result.Stats.DroppedTimeslots(), result.Stats.DroppedBookings())

	uc.logger.Info("ComputeCalendar: mode=%s, default_capacity=%d, available_days=%d",
		result.Policy.Mode, result.Policy.DefaultCapacity, len(result.Report.AvailableDays))

	return &Response{
		Report: result.Report,
		Policy: result.Policy,
	}, nil
}
