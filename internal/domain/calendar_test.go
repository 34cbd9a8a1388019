package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendarOverride_Modifier(t *testing.T) {
	multiplier := RateModeMultiplier
	fixed := RateModeFixed
	value := 1.5

	tests := []struct {
		name     string
		override CalendarOverride
		want     RateModifier
	}{
		{
			name:     "blocked rule",
			override: CalendarOverride{RuleKind: RuleKindBlocked},
			want:     RateModifier{Kind: ModifierBlocked},
		},
		{
			name:     "multiplier rule",
			override: CalendarOverride{RuleKind: RuleKindRateOverride, RateMode: &multiplier, RateValue: &value},
			want:     RateModifier{Kind: ModifierMultiplier, Value: 1.5},
		},
		{
			name:     "fixed rule",
			override: CalendarOverride{RuleKind: RuleKindRateOverride, RateMode: &fixed, RateValue: &value},
			want:     RateModifier{Kind: ModifierFixed, Value: 1.5},
		},
		{
			name:     "rate_override without mode is treated as none",
			override: CalendarOverride{RuleKind: RuleKindRateOverride},
			want:     RateModifier{Kind: ModifierNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.override.Modifier())
		})
	}
}

func TestRateModifier_IsBlocked(t *testing.T) {
	assert.True(t, RateModifier{Kind: ModifierBlocked}.IsBlocked())
	assert.False(t, RateModifier{Kind: ModifierNone}.IsBlocked())
	assert.False(t, RateModifier{Kind: ModifierMultiplier, Value: 2}.IsBlocked())
}
