package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	inventoryRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
	identityClient "github.com/m04kA/SMC-HotelService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-HotelService/internal/service/pricing"
	"github.com/m04kA/SMC-HotelService/internal/service/rules"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := *booking
	b.ID = int64(len(f.bookings) + 1)
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	f.bookings = append(f.bookings, &b)
	return &b, nil
}

// fakeInventory реализует условный декремент в памяти: резервирование
// атомарно по всему диапазону, отказ при нехватке на любую дату
type fakeInventory struct {
	mu        sync.Mutex
	available map[string]int
}

func newFakeInventory(rng domain.DateRange, capacity int) *fakeInventory {
	available := make(map[string]int)
	for _, day := range rng.Dates() {
		available[day.Format(domain.DateFormat)] = capacity
	}
	return &fakeInventory{available: available}
}

func (f *fakeInventory) Reserve(_ context.Context, roomTypeID int64, rng domain.DateRange, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, day := range rng.Dates() {
		key := day.Format(domain.DateFormat)
		if f.available[key] < count {
			return &inventoryRepo.InsufficientInventoryError{RoomTypeID: roomTypeID, Day: day}
		}
	}
	for _, day := range rng.Dates() {
		f.available[day.Format(domain.DateFormat)] -= count
	}
	return nil
}

type fakePricing struct {
	mu     sync.Mutex
	calls  int
	err    error
	result *domain.PriceBreakdown
}

func (f *fakePricing) Quote(_ context.Context, _ int64, rng domain.DateRange, rooms int) (*domain.PriceBreakdown, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	subtotal := int64(15000) * int64(rng.Nights()) * int64(rooms)
	return &domain.PriceBreakdown{Subtotal: subtotal, Total: subtotal}, nil
}

type fakeRules struct {
	err error
}

func (f *fakeRules) Validate(_ context.Context, _ string, _, _ time.Time) error {
	return f.err
}

type fakeIdentity struct {
	guests map[int64]*identityClient.Guest
}

func (f *fakeIdentity) GetGuest(_ context.Context, guestID int64) (*identityClient.Guest, error) {
	guest, ok := f.guests[guestID]
	if !ok {
		return nil, identityClient.ErrGuestNotFound
	}
	return guest, nil
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []*domain.AuditEntry
}

func (f *fakeAudit) Append(_ context.Context, entry *domain.AuditEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []domain.Event
}

func (f *fakeEvents) Publish(_ context.Context, event domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc        *UseCase
	bookings  *fakeBookingRepo
	inventory *fakeInventory
	pricing   *fakePricing
	rules     *fakeRules
	audit     *fakeAudit
	events    *fakeEvents
}

func newFixture(rng domain.DateRange, capacity int) *fixture {
	bookings := &fakeBookingRepo{}
	inventory := newFakeInventory(rng, capacity)
	pricingSvc := &fakePricing{}
	rulesSvc := &fakeRules{}
	identity := &fakeIdentity{guests: map[int64]*identityClient.Guest{
		42: {ID: 42, Classification: domain.ClassificationStandard},
	}}
	audit := &fakeAudit{}
	events := &fakeEvents{}

	uc := NewUseCase(
		bookings,
		inventory,
		pricingSvc,
		rulesSvc,
		identity,
		audit,
		events,
		passthroughTxManager{},
		nopLogger{},
	)

	return &fixture{
		uc:        uc,
		bookings:  bookings,
		inventory: inventory,
		pricing:   pricingSvc,
		rules:     rulesSvc,
		audit:     audit,
		events:    events,
	}
}

func testRange() domain.DateRange {
	start := time.Now().UTC().AddDate(0, 1, 0)
	return domain.NewDateRange(start, start.AddDate(0, 0, 2))
}

func testRequest(rng domain.DateRange, rooms int) *Request {
	return &Request{
		GuestID:    42,
		RoomTypeID: 7,
		StartDate:  types.NewDateString(rng.Start),
		EndDate:    types.NewDateString(rng.End),
		Rooms:      rooms,
	}
}

func TestExecute_Success(t *testing.T) {
	rng := testRange()
	f := newFixture(rng, 10)

	resp, err := f.uc.Execute(context.Background(), testRequest(rng, 2))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusProvisional), resp.Status)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, 2, resp.Rooms)

	// Бронирование создано, инвентарь списан
	require.Len(t, f.bookings.bookings, 1)
	for _, day := range rng.Dates() {
		assert.Equal(t, 8, f.inventory.available[day.Format(domain.DateFormat)])
	}

	// Ровно одна запись аудита и одно событие
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, domain.AuditActionBookingCreated, f.audit.entries[0].Action)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, domain.EventBookingCreated, f.events.events[0].Type)
}

func TestExecute_RulesFailureShortCircuits(t *testing.T) {
	rng := testRange()
	f := newFixture(rng, 10)
	f.rules.err = rules.ErrTooFarInAdvance

	_, err := f.uc.Execute(context.Background(), testRequest(rng, 1))
	assert.ErrorIs(t, err, ErrTooFarInAdvance)

	// До расчета цены и резервирования дело не дошло
	assert.Equal(t, 0, f.pricing.calls)
	assert.Empty(t, f.bookings.bookings)
	assert.Empty(t, f.audit.entries)
	assert.Empty(t, f.events.events)
	for _, day := range rng.Dates() {
		assert.Equal(t, 10, f.inventory.available[day.Format(domain.DateFormat)])
	}
}

func TestExecute_GuestNotFound(t *testing.T) {
	rng := testRange()
	f := newFixture(rng, 10)

	req := testRequest(rng, 1)
	req.GuestID = 999

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGuestNotFound)
	assert.Equal(t, 0, f.pricing.calls)
}

func TestExecute_BlockedDateRejects(t *testing.T) {
	rng := testRange()
	f := newFixture(rng, 10)
	f.pricing.err = &pricing.DateBlockedError{Day: rng.Start}

	_, err := f.uc.Execute(context.Background(), testRequest(rng, 1))
	assert.ErrorIs(t, err, ErrDateBlocked)

	// Ничего не создано и не списано
	assert.Empty(t, f.bookings.bookings)
	for _, day := range rng.Dates() {
		assert.Equal(t, 10, f.inventory.available[day.Format(domain.DateFormat)])
	}
}

func TestExecute_InsufficientInventory(t *testing.T) {
	rng := testRange()
	f := newFixture(rng, 1)

	_, err := f.uc.Execute(context.Background(), testRequest(rng, 2))
	assert.ErrorIs(t, err, ErrInsufficientInventory)
	assert.Empty(t, f.bookings.bookings)
	assert.Empty(t, f.audit.entries)
	assert.Empty(t, f.events.events)
}

func TestExecute_InvalidInput(t *testing.T) {
	rng := testRange()
	f := newFixture(rng, 10)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"zero rooms", func(req *Request) { req.Rooms = 0 }},
		{"too many rooms", func(req *Request) { req.Rooms = domain.MaxRoomsPerBooking + 1 }},
		{"missing start date", func(req *Request) { req.StartDate = "" }},
		{"malformed date", func(req *Request) { req.EndDate = "31-12-2026" }},
		{"reversed range", func(req *Request) { req.StartDate, req.EndDate = req.EndDate, req.StartDate }},
		{"non-positive guest", func(req *Request) { req.GuestID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest(rng, 1)
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastStartDateRejected(t *testing.T) {
	start := time.Now().UTC().AddDate(0, 0, -2)
	rng := domain.NewDateRange(start, start.AddDate(0, 0, 3))
	f := newFixture(rng, 10)

	_, err := f.uc.Execute(context.Background(), testRequest(rng, 1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConcurrentRequestsNeverOversell(t *testing.T) {
	const (
		capacity   = 5
		contenders = 20
	)

	rng := testRange()
	f := newFixture(rng, capacity)

	var wg sync.WaitGroup
	results := make(chan error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), testRequest(rng, 1))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, insufficient int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrInsufficientInventory)
			insufficient++
		}
	}

	// Ровно capacity запросов выиграли, остальные получили отказ
	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, contenders-capacity, insufficient)
	assert.Len(t, f.bookings.bookings, capacity)

	// Инвентарь не ушел в минус ни на одну дату
	for _, day := range rng.Dates() {
		assert.Equal(t, 0, f.inventory.available[day.Format(domain.DateFormat)])
	}
}
