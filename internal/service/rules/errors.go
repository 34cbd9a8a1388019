package rules

import "errors"

var (
	// ErrTooFarInAdvance возвращается, когда заезд дальше maxDaysAdvance
	ErrTooFarInAdvance = errors.New("rules: booking is too far in advance")

	// ErrInsufficientNotice возвращается, когда до заезда меньше minDaysNotice
	ErrInsufficientNotice = errors.New("rules: insufficient notice before arrival")

	// ErrUnknownClassification возвращается для классификации без правила —
	// ошибка конфигурации, не молчаливый пропуск
	ErrUnknownClassification = errors.New("rules: unknown guest classification")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rules: invalid input data")

	// ErrInternal возвращается при внутренних ошибках валидатора
	ErrInternal = errors.New("rules: internal error")
)
