package rules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/guestrule"
)

type fakeRuleRepo struct {
	rules map[string]*domain.GuestBookingRule
}

func (f *fakeRuleRepo) GetByClassification(_ context.Context, classification string) (*domain.GuestBookingRule, error) {
	rule, ok := f.rules[classification]
	if !ok {
		return nil, guestrule.ErrRuleNotFound
	}
	return rule, nil
}

func (f *fakeRuleRepo) Upsert(_ context.Context, rule *domain.GuestBookingRule) (*domain.GuestBookingRule, error) {
	r := *rule
	if existing, ok := f.rules[r.Classification]; ok {
		r.ID = existing.ID
	} else {
		r.ID = int64(len(f.rules) + 1)
	}
	f.rules[r.Classification] = &r
	return &r, nil
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

func newTestService() (*Service, *fakeAudit) {
	audit := &fakeAudit{}
	svc := NewService(&fakeRuleRepo{rules: map[string]*domain.GuestBookingRule{
		domain.ClassificationStandard:       {Classification: domain.ClassificationStandard, MaxDaysAdvance: 30, MinDaysNotice: 1},
		domain.ClassificationPriority:       {Classification: domain.ClassificationPriority, MaxDaysAdvance: 90, MinDaysNotice: 0},
		domain.ClassificationOrganizational: {Classification: domain.ClassificationOrganizational, MaxDaysAdvance: 365, MinDaysNotice: 7},
	}}, audit, passthroughTxManager{}, nopLogger{})
	return svc, audit
}

func TestValidate_WindowBoundariesInclusive(t *testing.T) {
	svc, _ := newTestService()
	requestDate := date("2026-03-01")

	tests := []struct {
		name           string
		classification string
		startDate      time.Time
		wantErr        error
	}{
		{"standard exactly at max advance", domain.ClassificationStandard, date("2026-03-31"), nil},
		{"standard one day past max advance", domain.ClassificationStandard, date("2026-04-01"), ErrTooFarInAdvance},
		{"standard exactly at min notice", domain.ClassificationStandard, date("2026-03-02"), nil},
		{"standard one day below min notice", domain.ClassificationStandard, date("2026-03-01"), ErrInsufficientNotice},
		{"priority same-day arrival allowed", domain.ClassificationPriority, date("2026-03-01"), nil},
		{"priority within wide window", domain.ClassificationPriority, date("2026-05-20"), nil},
		{"organizational exactly at min notice", domain.ClassificationOrganizational, date("2026-03-08"), nil},
		{"organizational below min notice", domain.ClassificationOrganizational, date("2026-03-05"), ErrInsufficientNotice},
		{"organizational exactly at max advance", domain.ClassificationOrganizational, date("2027-03-01"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Validate(context.Background(), tt.classification, requestDate, tt.startDate)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_UnknownClassification(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Validate(context.Background(), "vip", date("2026-03-01"), date("2026-03-10"))
	assert.ErrorIs(t, err, ErrUnknownClassification, "unknown classification is a config error, not a silent pass")
}

func TestUpsertRule_WritesAuditEntry(t *testing.T) {
	svc, audit := newTestService()

	saved, err := svc.UpsertRule(context.Background(), &domain.GuestBookingRule{
		Classification: domain.ClassificationStandard,
		MaxDaysAdvance: 60,
		MinDaysNotice:  2,
	}, "admin:1")
	require.NoError(t, err)
	assert.Equal(t, 60, saved.MaxDaysAdvance)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, domain.AuditActionRuleEdit, audit.entries[0].Action)
	assert.Equal(t, "admin:1", audit.entries[0].Actor)
	assert.Equal(t, domain.ClassificationStandard, audit.entries[0].Metadata["classification"])
}

func TestUpsertRule_NewWindowGovernsSubsequentValidation(t *testing.T) {
	svc, _ := newTestService()
	requestDate := date("2026-03-01")

	// До правки 60 дней вперед для standard недоступны
	err := svc.Validate(context.Background(), domain.ClassificationStandard, requestDate, date("2026-04-30"))
	require.ErrorIs(t, err, ErrTooFarInAdvance)

	_, err = svc.UpsertRule(context.Background(), &domain.GuestBookingRule{
		Classification: domain.ClassificationStandard,
		MaxDaysAdvance: 60,
		MinDaysNotice:  1,
	}, "admin:1")
	require.NoError(t, err)

	assert.NoError(t, svc.Validate(context.Background(), domain.ClassificationStandard, requestDate, date("2026-04-30")))
}

func TestUpsertRule_Validation(t *testing.T) {
	svc, audit := newTestService()

	tests := []struct {
		name  string
		rule  *domain.GuestBookingRule
		actor string
	}{
		{"nil rule", nil, "admin:1"},
		{"empty classification", &domain.GuestBookingRule{MaxDaysAdvance: 30}, "admin:1"},
		{"negative max advance", &domain.GuestBookingRule{Classification: "standard", MaxDaysAdvance: -1}, "admin:1"},
		{"min notice above max advance", &domain.GuestBookingRule{Classification: "standard", MaxDaysAdvance: 5, MinDaysNotice: 10}, "admin:1"},
		{"missing actor", &domain.GuestBookingRule{Classification: "standard", MaxDaysAdvance: 30}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertRule(context.Background(), tt.rule, tt.actor)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Empty(t, audit.entries, "rejected input leaves no audit trail")
}
