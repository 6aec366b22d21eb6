package capacity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	capacityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/capacity"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/capacity/models"
)

// Service сервис для работы с конфигурацией ёмкости офферов
type Service struct {
	configRepo ConfigRepository
	defaults   domain.CapacityPolicy
	logger     Logger
}

// NewService создает новый экземпляр сервиса.
// defaults возвращается, когда сохранённой конфигурации нет.
func NewService(configRepo ConfigRepository, defaults domain.CapacityPolicy, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		defaults:   defaults,
		logger:     logger,
	}
}

// Get возвращает действующую конфигурацию: оффера → глобальную → значения сервиса по умолчанию.
// offerID == nil запрашивает только глобальную конфигурацию.
func (s *Service) Get(ctx context.Context, offerID *int64) (*models.ConfigResponse, error) {
	if offerID != nil && *offerID <= 0 {
		return nil, fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}

	var (
		config *domain.OfferCapacityConfig
		err    error
	)
	if offerID != nil {
		config, err = s.configRepo.GetConfigWithHierarchy(ctx, *offerID)
	} else {
		config, err = s.configRepo.GetByOfferID(ctx, nil)
	}

	if errors.Is(err, capacityRepo.ErrConfigNotFound) {
		s.logger.Info("Get: no stored config for offer=%v, using defaults", offerLabel(offerID))
		return models.FromPolicy(offerID, s.defaults), nil
	}
	if err != nil {
		s.logger.Error("Get: failed to get config for offer=%v: %v", offerLabel(offerID), err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	return models.FromDomain(config), nil
}

// Upsert сохраняет конфигурацию оффера (или глобальную)
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: offer=%v, default_capacity=%d, mode=%q, day_limit=%d, hour_limit=%d",
		offerLabel(req.OfferID), req.DefaultCapacity, req.Mode, req.DayLimit, req.HourLimit)

	// 1. Валидируем входные данные
	mode, err := validateUpsert(req)
	if err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем
	saved, err := s.configRepo.Upsert(ctx, &domain.OfferCapacityConfig{
		OfferID:         req.OfferID,
		DefaultCapacity: req.DefaultCapacity,
		Mode:            mode,
		DayLimit:        req.DayLimit,
		HourLimit:       req.HourLimit,
	})
	if err != nil {
		s.logger.Error("Upsert: failed to save config for offer=%v: %v", offerLabel(req.OfferID), err)
		return nil, fmt.Errorf("%w: failed to save config: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: config id=%d saved for offer=%v", saved.ID, offerLabel(req.OfferID))
	return models.FromDomain(saved), nil
}

// Delete удаляет конфигурацию оффера (или глобальную).
// После удаления оффер наследует глобальную конфигурацию или значения сервиса по умолчанию.
func (s *Service) Delete(ctx context.Context, offerID *int64) error {
	if offerID != nil && *offerID <= 0 {
		return fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}

	err := s.configRepo.Delete(ctx, offerID)
	if errors.Is(err, capacityRepo.ErrConfigNotFound) {
		s.logger.Warn("Delete: no stored config for offer=%v", offerLabel(offerID))
		return ErrConfigNotFound
	}
	if err != nil {
		s.logger.Error("Delete: failed to delete config for offer=%v: %v", offerLabel(offerID), err)
		return fmt.Errorf("%w: failed to delete config: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: config removed for offer=%v", offerLabel(offerID))
	return nil
}

func validateUpsert(req *models.UpsertConfigRequest) (domain.CapacityMode, error) {
	if req.OfferID != nil && *req.OfferID <= 0 {
		return "", fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}

	if req.DefaultCapacity < domain.MinCapacity || req.DefaultCapacity > domain.MaxCapacity {
		return "", fmt.Errorf("%w: default_capacity must be between %d and %d",
			ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}

	mode := domain.DefaultCapacityMode
	if m := strings.TrimSpace(req.Mode); m != "" {
		mode = domain.CapacityMode(m)
		if !mode.IsValid() {
			return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
		}
	}

	if req.DayLimit < domain.MinDayLimit || req.DayLimit > domain.MaxDayLimit {
		return "", fmt.Errorf("%w: day_limit must be between %d and %d",
			ErrInvalidInput, domain.MinDayLimit, domain.MaxDayLimit)
	}

	if req.HourLimit < domain.MinHourLimit || req.HourLimit > domain.MaxHourLimit {
		return "", fmt.Errorf("%w: hour_limit must be between %d and %d",
			ErrInvalidInput, domain.MinHourLimit, domain.MaxHourLimit)
	}

	return mode, nil
}

func offerLabel(offerID *int64) string {
	if offerID == nil {
		return "global"
	}
	return strconv.FormatInt(*offerID, 10)
}
