package capacity

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("capacity.service: invalid input data")

	// ErrConfigNotFound возвращается при удалении несуществующей конфигурации
	ErrConfigNotFound = errors.New("capacity.service: config not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("capacity.service: internal error")
)
