package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("session.storage: session not found")
)
