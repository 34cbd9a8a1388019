package guestrule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда для классификации гостя нет правила
	// Неизвестная классификация — ошибка конфигурации, не молчаливый пропуск.
	ErrRuleNotFound = errors.New("guestrule.repository: rule not found for classification")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("guestrule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("guestrule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("guestrule.repository: failed to scan row")
)
