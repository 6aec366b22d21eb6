package compute_calendar

import "errors"

var (
	// ErrInvalidInput возвращается, когда в запросе нет from или to
	ErrInvalidInput = errors.New("compute_calendar: invalid input payload")

	// ErrRangeTooLong возвращается, когда диапазон превышает допустимое число дней
	ErrRangeTooLong = errors.New("compute_calendar: date range is too long")
)
