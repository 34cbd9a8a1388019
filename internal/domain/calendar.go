package domain

import "time"

// OverrideRuleKind вид календарного правила
type OverrideRuleKind string

const (
	RuleKindBlocked      OverrideRuleKind = "blocked"
	RuleKindRateOverride OverrideRuleKind = "rate_override"
)

// RateMode способ применения ценового правила
type RateMode string

const (
	RateModeMultiplier RateMode = "multiplier"
	RateModeFixed      RateMode = "fixed"
)

// CalendarOverride календарное правило на дату
// RoomTypeID = nil означает правило для всех типов номеров; правило для
// конкретного типа имеет приоритет над общим.
type CalendarOverride struct {
	ID         int64
	Day        time.Time
	RoomTypeID *int64
	RuleKind   OverrideRuleKind
	RateMode   *RateMode
	RateValue  *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Modifier возвращает правило как закрытый вариант RateModifier
func (o *CalendarOverride) Modifier() RateModifier {
	if o.RuleKind == RuleKindBlocked {
		return RateModifier{Kind: ModifierBlocked}
	}
	if o.RateMode == nil || o.RateValue == nil {
		// rate_override без mode/value — некорректная конфигурация,
		// трактуем как отсутствие правила
		return RateModifier{Kind: ModifierNone}
	}
	switch *o.RateMode {
	case RateModeMultiplier:
		return RateModifier{Kind: ModifierMultiplier, Value: *o.RateValue}
	case RateModeFixed:
		return RateModifier{Kind: ModifierFixed, Value: *o.RateValue}
	default:
		return RateModifier{Kind: ModifierNone}
	}
}

// ModifierKind вид ценового модификатора
type ModifierKind string

const (
	ModifierNone       ModifierKind = "none"
	ModifierBlocked    ModifierKind = "blocked"
	ModifierMultiplier ModifierKind = "multiplier"
	ModifierFixed      ModifierKind = "fixed"
)

// RateModifier закрытый вариант результата поиска календарного правила
// Kind определяет интерпретацию Value: для multiplier это множитель базовой
// цены, для fixed — цена за ночь в минорных единицах, иначе Value не задан.
type RateModifier struct {
	Kind  ModifierKind
	Value float64
}

// IsBlocked возвращает true, если продажа на дату запрещена
func (m RateModifier) IsBlocked() bool {
	return m.Kind == ModifierBlocked
}
