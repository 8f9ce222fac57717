package start_session

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена в каталоге
	ErrActivityNotFound = errors.New("start_session: activity not found")

	// ErrProviderNotFound возвращается, когда провайдер активности не найден
	ErrProviderNotFound = errors.New("start_session: provider not found")

	// ErrInvalidDuration возвращается, когда активность не предлагает
	// выбранную длительность
	ErrInvalidDuration = errors.New("start_session: activity does not offer this duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_session: internal error")
)
