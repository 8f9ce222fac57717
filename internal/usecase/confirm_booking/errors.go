package confirm_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("confirm_booking: session not found")

	// ErrVerificationIncomplete возвращается, когда инвариант сборки
	// бронирования нарушен: данные гостя или верификации неполны
	ErrVerificationIncomplete = errors.New("confirm_booking: guest info or verification is incomplete")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
