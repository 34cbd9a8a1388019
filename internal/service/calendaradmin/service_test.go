package calendaradmin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type fakeCalendar struct {
	overrides map[int64]*domain.CalendarOverride
	nextID    int64
}

func (f *fakeCalendar) Upsert(_ context.Context, override *domain.CalendarOverride) (*domain.CalendarOverride, error) {
	f.nextID++
	o := *override
	o.ID = f.nextID
	f.overrides[o.ID] = &o
	return &o, nil
}

func (f *fakeCalendar) Delete(_ context.Context, id int64) error {
	delete(f.overrides, id)
	return nil
}

func (f *fakeCalendar) ListForRange(_ context.Context, _ int64, _ domain.DateRange) ([]*domain.CalendarOverride, error) {
	result := make([]*domain.CalendarOverride, 0, len(f.overrides))
	for _, o := range f.overrides {
		result = append(result, o)
	}
	return result, nil
}

type fakeAudit struct {
	entries []*domain.AuditEntry
}

func (f *fakeAudit) Append(_ context.Context, entry *domain.AuditEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newFixture() (*Service, *fakeAudit) {
	audit := &fakeAudit{}
	svc := NewService(
		&fakeCalendar{overrides: make(map[int64]*domain.CalendarOverride)},
		audit,
		passthroughTxManager{},
		nopLogger{},
	)
	return svc, audit
}

func TestUpsert_WritesAuditEntry(t *testing.T) {
	svc, audit := newFixture()

	saved, err := svc.Upsert(context.Background(), &domain.CalendarOverride{
		Day:      date("2026-12-31"),
		RuleKind: domain.RuleKindBlocked,
	}, "admin:1")
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, domain.AuditActionCalendarEdit, audit.entries[0].Action)
	assert.Equal(t, "admin:1", audit.entries[0].Actor)
	assert.Nil(t, audit.entries[0].BookingID)
}

func TestUpsert_Validation(t *testing.T) {
	svc, _ := newFixture()
	mode := domain.RateModeMultiplier
	bogusMode := domain.RateMode("bogus")
	value := 1.5
	negative := -1.0

	tests := []struct {
		name     string
		override *domain.CalendarOverride
	}{
		{"nil override", nil},
		{"zero day", &domain.CalendarOverride{RuleKind: domain.RuleKindBlocked}},
		{"blocked with rate value", &domain.CalendarOverride{
			Day: date("2026-12-31"), RuleKind: domain.RuleKindBlocked, RateValue: &value,
		}},
		{"rate_override without mode", &domain.CalendarOverride{
			Day: date("2026-12-31"), RuleKind: domain.RuleKindRateOverride, RateValue: &value,
		}},
		{"rate_override with unknown mode", &domain.CalendarOverride{
			Day: date("2026-12-31"), RuleKind: domain.RuleKindRateOverride, RateMode: &bogusMode, RateValue: &value,
		}},
		{"negative rate value", &domain.CalendarOverride{
			Day: date("2026-12-31"), RuleKind: domain.RuleKindRateOverride, RateMode: &mode, RateValue: &negative,
		}},
		{"unknown rule kind", &domain.CalendarOverride{
			Day: date("2026-12-31"), RuleKind: "bogus",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), tt.override, "admin:1")
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDelete_WritesAuditEntry(t *testing.T) {
	svc, audit := newFixture()

	saved, err := svc.Upsert(context.Background(), &domain.CalendarOverride{
		Day:      date("2026-12-31"),
		RuleKind: domain.RuleKindBlocked,
	}, "admin:1")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), saved.ID, "admin:2")
	require.NoError(t, err)

	require.Len(t, audit.entries, 2)
	assert.Equal(t, "admin:2", audit.entries[1].Actor)
	assert.Equal(t, "delete", audit.entries[1].Metadata["op"])
}
