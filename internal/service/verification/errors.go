package verification

import "errors"

var (
	// ErrIncompleteCode возвращается, когда введены не все шесть цифр кода
	ErrIncompleteCode = errors.New("verification: code is incomplete")

	// ErrNonNumericCode возвращается, когда код содержит нецифровые символы
	// Нецифровой ввод отбрасывается на границе ввода, до проверки кода
	ErrNonNumericCode = errors.New("verification: code must contain only digits")

	// ErrUnknownChannel возвращается при неизвестном канале верификации
	ErrUnknownChannel = errors.New("verification: unknown channel")
)
