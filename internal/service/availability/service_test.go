package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/roomtype"
)

type fakeInventory struct {
	days []domain.InventoryDay
}

func (f *fakeInventory) AvailabilityForRange(_ context.Context, _ int64, _ domain.DateRange) ([]domain.InventoryDay, error) {
	return f.days, nil
}

type fakeCalendar struct {
	overrides []*domain.CalendarOverride
}

func (f *fakeCalendar) ListForRange(_ context.Context, _ int64, _ domain.DateRange) ([]*domain.CalendarOverride, error) {
	return f.overrides, nil
}

type fakeRoomTypes struct {
	known map[int64]bool
}

func (f *fakeRoomTypes) GetByID(_ context.Context, id int64) (*domain.RoomType, error) {
	if !f.known[id] {
		return nil, roomtype.ErrRoomTypeNotFound
	}
	return &domain.RoomType{ID: id, TotalRooms: 10}, nil
}

type passthroughTxManager struct {
	readOnlyCalls int
}

func (p *passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	p.readOnlyCalls++
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

func TestForRange_MarksBlockedDays(t *testing.T) {
	roomTypeID := int64(7)
	inv := &fakeInventory{days: []domain.InventoryDay{
		{RoomTypeID: 7, Day: date("2026-04-01"), AvailableRooms: 10},
		{RoomTypeID: 7, Day: date("2026-04-02"), AvailableRooms: 4},
		{RoomTypeID: 7, Day: date("2026-04-03"), AvailableRooms: 0},
	}}
	cal := &fakeCalendar{overrides: []*domain.CalendarOverride{
		{Day: date("2026-04-02"), RuleKind: domain.RuleKindBlocked},
	}}

	tx := &passthroughTxManager{}
	svc := NewService(inv, cal, &fakeRoomTypes{known: map[int64]bool{7: true}}, tx, nopLogger{})

	days, err := svc.ForRange(context.Background(), roomTypeID, domain.NewDateRange(date("2026-04-01"), date("2026-04-04")))
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, 1, tx.readOnlyCalls, "all reads share one read-only transaction")

	assert.False(t, days[0].Blocked)
	assert.True(t, days[1].Blocked)
	assert.Equal(t, 4, days[1].AvailableRooms, "blocking does not zero physical availability")
	assert.False(t, days[2].Blocked)
	assert.Equal(t, 0, days[2].AvailableRooms)
}

func TestForRange_SpecificOverrideBeatsBlanket(t *testing.T) {
	roomTypeID := int64(7)
	mode := domain.RateModeMultiplier
	value := 1.2

	inv := &fakeInventory{days: []domain.InventoryDay{
		{RoomTypeID: 7, Day: date("2026-04-01"), AvailableRooms: 10},
	}}
	// Общее правило блокирует дату, но правило для конкретного типа —
	// ценовое; для этого типа дата не заблокирована
	cal := &fakeCalendar{overrides: []*domain.CalendarOverride{
		{Day: date("2026-04-01"), RuleKind: domain.RuleKindBlocked},
		{Day: date("2026-04-01"), RoomTypeID: &roomTypeID, RuleKind: domain.RuleKindRateOverride, RateMode: &mode, RateValue: &value},
	}}

	svc := NewService(inv, cal, &fakeRoomTypes{known: map[int64]bool{7: true}}, &passthroughTxManager{}, nopLogger{})

	days, err := svc.ForRange(context.Background(), roomTypeID, domain.NewDateRange(date("2026-04-01"), date("2026-04-02")))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.False(t, days[0].Blocked)
}

func TestForRange_Errors(t *testing.T) {
	svc := NewService(&fakeInventory{}, &fakeCalendar{}, &fakeRoomTypes{known: map[int64]bool{}}, &passthroughTxManager{}, nopLogger{})

	_, err := svc.ForRange(context.Background(), 1, domain.NewDateRange(date("2026-04-04"), date("2026-04-01")))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.ForRange(context.Background(), 1, domain.NewDateRange(date("2026-04-01"), date("2026-04-04")))
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}
