package catalog

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("catalog.storage: activity not found")

	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("catalog.storage: provider not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.storage: failed to scan row")
)
