package report

import "errors"

var (
	// ErrCacheMiss возвращается, когда отчёта нет в кеше
	ErrCacheMiss = errors.New("report.cache: cache miss")

	// ErrCache возвращается при ошибках обращения к Redis
	ErrCache = errors.New("report.cache: redis error")

	// ErrDecode возвращается, когда содержимое кеша не удалось разобрать
	ErrDecode = errors.New("report.cache: failed to decode report")
)
