package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard service: internal error")
)
