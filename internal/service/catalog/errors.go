package catalog

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("activity not found")

	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
