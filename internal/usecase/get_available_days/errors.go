package get_available_days

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_days: invalid input data")

	// ErrRangeTooLong возвращается, когда диапазон превышает допустимое число дней
	ErrRangeTooLong = errors.New("get_available_days: date range is too long")

	// ErrOfferNotFound возвращается, когда оффер не найден в источнике данных
	ErrOfferNotFound = errors.New("get_available_days: offer not found")

	// ErrUpstream возвращается, когда внешний источник данных недоступен или ответил некорректно
	ErrUpstream = errors.New("get_available_days: upstream error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_days: internal error")
)
