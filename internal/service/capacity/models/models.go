package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Источник действующей конфигурации
const (
	SourceOffer   = "offer"
	SourceGlobal  = "global"
	SourceDefault = "default"
)

// UpsertConfigRequest запрос на сохранение конфигурации ёмкости
type UpsertConfigRequest struct {
	OfferID         *int64 // nil = глобальная конфигурация
	DefaultCapacity int
	Mode            string // Пусто = per_timeslot_capacity
	DayLimit        int    // 0 = сумма ёмкостей таймслотов
	HourLimit       int    // 0 = сумма ёмкостей таймслотов часа
}

// ConfigResponse действующая конфигурация ёмкости
type ConfigResponse struct {
	ID              int64      `json:"id,omitempty"`
	OfferID         *int64     `json:"offer_id,omitempty"`
	Source          string     `json:"source"`
	DefaultCapacity int        `json:"default_capacity"`
	Mode            string     `json:"mode"`
	DayLimit        int        `json:"day_limit"`
	HourLimit       int        `json:"hour_limit"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(config *domain.OfferCapacityConfig) *ConfigResponse {
	source := SourceOffer
	if config.IsGlobalConfig() {
		source = SourceGlobal
	}

	return &ConfigResponse{
		ID:              config.ID,
		OfferID:         config.OfferID,
		Source:          source,
		DefaultCapacity: config.DefaultCapacity,
		Mode:            string(config.Mode),
		DayLimit:        config.DayLimit,
		HourLimit:       config.HourLimit,
		CreatedAt:       &config.CreatedAt,
		UpdatedAt:       &config.UpdatedAt,
	}
}

// FromPolicy ответ для случая, когда сохранённой конфигурации нет
func FromPolicy(offerID *int64, policy domain.CapacityPolicy) *ConfigResponse {
	return &ConfigResponse{
		OfferID:         offerID,
		Source:          SourceDefault,
		DefaultCapacity: policy.DefaultCapacity,
		Mode:            string(policy.Mode),
		DayLimit:        policy.DayLimit,
		HourLimit:       policy.HourLimit,
	}
}
