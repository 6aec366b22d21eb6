package update_capacity_config

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/capacity/models"
)

// UpdateCapacityConfigRequest HTTP request model
type UpdateCapacityConfigRequest struct {
	DefaultCapacity int    `json:"default_capacity"`
	Mode            string `json:"mode,omitempty"`
	DayLimit        int    `json:"day_limit,omitempty"`
	HourLimit       int    `json:"hour_limit,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCapacityConfigRequest) ToServiceRequest(offerID *int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		OfferID:         offerID,
		DefaultCapacity: r.DefaultCapacity,
		Mode:            r.Mode,
		DayLimit:        r.DayLimit,
		HourLimit:       r.HourLimit,
	}
}
