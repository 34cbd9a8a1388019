package depositpolicy

import "errors"

var (
	// ErrBandNotFound возвращается, когда для количества номеров нет полосы
	// Отсутствие полосы при групповом бронировании — ошибка конфигурации.
	ErrBandNotFound = errors.New("depositpolicy.repository: no deposit band for room count")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("depositpolicy.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("depositpolicy.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("depositpolicy.repository: failed to scan row")
)
