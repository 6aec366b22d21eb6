package get_available_days

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableDays "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_days"
)

// AvailableDaysResponse ответ GET /api/v1/offers/{offerId}/available-days
type AvailableDaysResponse struct {
	OfferID         int64                    `json:"offer_id"`
	From            string                   `json:"from,omitempty"`
	To              string                   `json:"to,omitempty"`
	Mode            string                   `json:"mode"`
	DefaultCapacity int                      `json:"default_capacity,omitempty"`
	Cached          bool                     `json:"cached"`
	AvailableDays   []domain.DayAvailability `json:"available_days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := []domain.DayAvailability{}
	if resp.Report != nil && resp.Report.AvailableDays != nil {
		days = resp.Report.AvailableDays
	}

	result := &AvailableDaysResponse{
		OfferID:         resp.OfferID,
		Mode:            string(resp.Policy.Mode),
		DefaultCapacity: resp.Policy.DefaultCapacity,
		Cached:          resp.Cached,
		AvailableDays:   days,
	}
	if !resp.Range.IsEmpty() {
		result.From = resp.Range.From.Format(domain.DateFormat)
		result.To = resp.Range.To.Format(domain.DateFormat)
	}
	return result
}
