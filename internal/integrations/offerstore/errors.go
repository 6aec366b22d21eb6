package offerstore

import "errors"

var (
	// ErrOfferNotFound возвращается, когда сервис офферов не знает такой оффер
	ErrOfferNotFound = errors.New("offerstore client: offer not found")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("offerstore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("offerstore client: invalid response")
)
