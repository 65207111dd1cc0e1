package events

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда слот уже занят существующим событием
	ErrSlotNotAvailable = errors.New("events.repository: slot not available")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("events.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("events.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("events.repository: failed to scan row")
)
