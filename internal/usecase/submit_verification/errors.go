package submit_verification

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("submit_verification: session not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_verification: internal error")
)
