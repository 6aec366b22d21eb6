package compute_calendar

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest проверяет наличие границ диапазона.
// Нераспознанные даты не являются ошибкой: движок вернёт пустой отчёт.
func validateRequest(req *Request) error {
	if isMissing(req.From) {
		return fmt.Errorf("%w: from is required", ErrInvalidInput)
	}
	if isMissing(req.To) {
		return fmt.Errorf("%w: to is required", ErrInvalidInput)
	}
	return nil
}

// validateRange ограничивает длину распознанного диапазона
func validateRange(from, to interface{}, maxDays int) error {
	fromDay, okFrom := availability.ParseDay(from)
	toDay, okTo := availability.ParseDay(to)
	if !okFrom || !okTo {
		return nil
	}

	days := domain.DateRange{From: fromDay, To: toDay}.Days()
	if maxDays > 0 && days > maxDays {
		return fmt.Errorf("%w: %d days requested, max %d", ErrRangeTooLong, days, maxDays)
	}
	return nil
}

func isMissing(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}
