package get_available_days

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	reportCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/report"
	capacityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/capacity"
	offerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/offer"
	offerStoreClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/offerstore"
)

// Результаты обращения к кешу для метрик
const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// UseCase use case получения доступных дней оффера
type UseCase struct {
	source       OfferDataSource
	sourceName   string
	configRepo   CapacityConfigRepository
	cache        ReportCache // nil = кеш выключен
	defaults     domain.CapacityPolicy
	maxRangeDays int
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	source OfferDataSource,
	sourceName string,
	configRepo CapacityConfigRepository,
	cache ReportCache,
	defaults domain.CapacityPolicy,
	maxRangeDays int,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		source:       source,
		sourceName:   sourceName,
		configRepo:   configRepo,
		cache:        cache,
		defaults:     defaults,
		maxRangeDays: maxRangeDays,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных дней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: offer=%d, from=%s, to=%s", req.OfferID, req.From, req.To)

	// 1. Валидация входных данных
	dateRange, err := validateRequest(req, uc.maxRangeDays)
	if err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
		return nil, err
	}

	// 2. Конфигурация ёмкости с учетом иерархии
	config, err := uc.configRepo.GetConfigWithHierarchy(ctx, req.OfferID)
	if err != nil && !errors.Is(err, capacityRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableDays: failed to get capacity config: %v", err)
		return nil, fmt.Errorf("%w: failed to get capacity config: %v", ErrInternal, err)
	}

	// 3. Политика запроса: query > сохранённая конфигурация > метаданные бронирований > конфигурация сервиса
	policy, explicitDefault := uc.resolvePolicy(config, req.DefaultCapacity)

	// 4. Кеш
	var key string
	if uc.cache != nil {
		key = uc.cache.Key(req.OfferID, dateRange, policy)
		if entry := uc.fromCache(ctx, key); entry != nil {
			return &Response{
				OfferID: req.OfferID,
				Range:   dateRange,
				Policy:  entry.Policy,
				Report:  entry.Report,
				Cached:  true,
			}, nil
		}
	}

	// 5. Таймслоты оффера
	timeslots, err := uc.source.GetTimeslots(ctx, req.OfferID)
	if err != nil {
		return nil, uc.sourceError("timeslots", req.OfferID, err)
	}

	// 6. Бронирования за [from, to + 1 день)
	bookings, err := uc.source.GetBookings(ctx, req.OfferID, dateRange.From, dateRange.End())
	if err != nil {
		return nil, uc.sourceError("bookings", req.OfferID, err)
	}

	// 7. Расчёт
	input := &availability.Input{
		Timeslots:        timeslots,
		Bookings:         bookings,
		From:             dateRange.From,
		To:               dateRange.To,
		FallbackCapacity: uc.defaults.DefaultCapacity,
		Mode:             policy.Mode,
		DayLimit:         policy.DayLimit,
		HourLimit:        policy.HourLimit,
	}
	if explicitDefault {
		input.DefaultCapacity = policy.DefaultCapacity
	}
	result := availability.Evaluate(input)

	uc.metrics.ObserveReport(string(result.Policy.Mode), len(result.Report.AvailableDays),
		result.Stats.DroppedTimeslots(), result.Stats.DroppedBookings())

	if dropped := result.Stats.DroppedTimeslots() + result.Stats.DroppedBookings(); dropped > 0 {
		uc.logger.Info("GetAvailableDays: offer=%d skipped records: timeslots=%d (inactive=%d, malformed=%d), bookings=%d (malformed=%d, unconfirmed=%d, unmatched=%d)",
			req.OfferID,
			result.Stats.DroppedTimeslots(), result.Stats.TimeslotsInactive, result.Stats.TimeslotsMalformed,
			result.Stats.DroppedBookings(), result.Stats.BookingsMalformed, result.Stats.BookingsUnconfirmed,
			result.Stats.BookingsUnmatched)
	}

	// 8. Сохраняем в кеш (ошибки кеша не влияют на ответ)
	if uc.cache != nil {
		entry := &reportCache.Entry{Policy: result.Policy, Report: result.Report}
		if err := uc.cache.Set(ctx, key, entry); err != nil {
			uc.logger.Warn("GetAvailableDays: failed to cache report: %v", err)
		}
	}

	uc.logger.Info("GetAvailableDays: offer=%d, mode=%s, default_capacity=%d, available_days=%d",
		req.OfferID, result.Policy.Mode, result.Policy.DefaultCapacity, len(result.Report.AvailableDays))

	return &Response{
		OfferID: req.OfferID,
		Range:   dateRange,
		Policy:  result.Policy,
		Report:  result.Report,
	}, nil
}

// resolvePolicy собирает политику из конфигурации.
// explicit == false означает, что ёмкость по умолчанию может прийти из метаданных бронирований.
func (uc *UseCase) resolvePolicy(config *domain.OfferCapacityConfig, override *int) (domain.CapacityPolicy, bool) {
	policy := uc.defaults
	explicit := false

	if config != nil {
		policy = config.Policy()
		explicit = policy.DefaultCapacity > 0
		uc.logger.Info("GetAvailableDays: using capacity config id=%d", config.ID)
	}

	if override != nil {
		policy.DefaultCapacity = *override
		explicit = true
	}

	if !explicit {
		policy.DefaultCapacity = 0
	}

	return policy, explicit
}

func (uc *UseCase) fromCache(ctx context.Context, key string) *reportCache.Entry {
	entry, err := uc.cache.Get(ctx, key)
	switch {
	case err == nil:
		uc.metrics.ObserveCache(cacheHit)
		uc.logger.Info("GetAvailableDays: cache hit key=%s", key)
		return entry
	case errors.Is(err, reportCache.ErrCacheMiss):
		uc.metrics.ObserveCache(cacheMiss)
	default:
		uc.metrics.ObserveCache(cacheError)
		uc.logger.Warn("GetAvailableDays: cache lookup failed: %v", err)
	}
	return nil
}

// sourceError приводит ошибку источника данных к ошибке use case
func (uc *UseCase) sourceError(what string, offerID int64, err error) error {
	switch {
	case errors.Is(err, offerRepo.ErrOfferNotFound), errors.Is(err, offerStoreClient.ErrOfferNotFound):
		uc.logger.Warn("GetAvailableDays: offer id=%d not found", offerID)
		return ErrOfferNotFound

	case errors.Is(err, offerStoreClient.ErrInternal), errors.Is(err, offerStoreClient.ErrInvalidResponse):
		uc.metrics.ObserveUpstreamError(uc.sourceName)
		uc.logger.Error("GetAvailableDays: upstream failed to return %s for offer id=%d: %v", what, offerID, err)
		return fmt.Errorf("%w: failed to get %s: %v", ErrUpstream, what, err)

	default:
		uc.metrics.ObserveUpstreamError(uc.sourceName)
		uc.logger.Error("GetAvailableDays: failed to get %s for offer id=%d: %v", what, offerID, err)
		return fmt.Errorf("%w: failed to get %s: %v", ErrInternal, what, err)
	}
}
