package get_available_days

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные и разбирает диапазон
func validateRequest(req *Request, maxRangeDays int) (domain.DateRange, error) {
	if req.OfferID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}

	if req.DefaultCapacity != nil &&
		(*req.DefaultCapacity < domain.MinCapacity || *req.DefaultCapacity > domain.MaxCapacity) {
		return domain.DateRange{}, fmt.Errorf("%w: default_capacity must be between %d and %d",
			ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}

	from, ok := availability.ParseDay(req.From)
	if !ok {
		return domain.DateRange{}, fmt.Errorf("%w: invalid from %q", ErrInvalidInput, req.From)
	}
	to, ok := availability.ParseDay(req.To)
	if !ok {
		return domain.DateRange{}, fmt.Errorf("%w: invalid to %q", ErrInvalidInput, req.To)
	}

	dateRange := domain.DateRange{From: from, To: to}
	if days := dateRange.Days(); maxRangeDays > 0 && days > maxRangeDays {
		return domain.DateRange{}, fmt.Errorf("%w: %d days requested, max %d", ErrRangeTooLong, days, maxRangeDays)
	}

	return dateRange, nil
}
