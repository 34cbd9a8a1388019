package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	storage "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	getCalls int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	f.getCalls++
	b, ok := f.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	copy := *b
	return &copy, nil
}

func (f *fakeBookingRepo) GetByGuestID(_ context.Context, guestID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.GuestID != guestID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatusCAS(_ context.Context, id int64, from, to domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	if b.Status != from {
		return storage.ErrStatusConflict
	}
	b.Status = to
	return nil
}

func (f *fakeBookingRepo) CancelCAS(_ context.Context, id int64, from domain.BookingStatus, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	if b.Status != from {
		return storage.ErrStatusConflict
	}
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	now := time.Now().UTC()
	b.CancelledAt = &now
	return nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	p := *payment
	p.ID = int64(len(f.payments) + 1)
	f.payments = append(f.payments, &p)
	return &p, nil
}

func (f *fakePaymentRepo) SumSucceededByBooking(_ context.Context, bookingID int64) (int64, error) {
	var sum int64
	for _, p := range f.payments {
		if p.BookingID == bookingID && p.Status == domain.PaymentSucceeded {
			sum += p.Amount
		}
	}
	return sum, nil
}

func (f *fakePaymentRepo) GetByBookingID(_ context.Context, bookingID int64) ([]*domain.Payment, error) {
	var result []*domain.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			result = append(result, p)
		}
	}
	return result, nil
}

type releaseCall struct {
	roomTypeID int64
	rng        domain.DateRange
	count      int
}

type fakeInventory struct {
	releases []releaseCall
	// violations даты нарушений учета, которые вернет следующий Release
	violations []time.Time
}

func (f *fakeInventory) Release(_ context.Context, roomTypeID int64, rng domain.DateRange, count int) ([]time.Time, error) {
	f.releases = append(f.releases, releaseCall{roomTypeID: roomTypeID, rng: rng, count: count})
	return f.violations, nil
}

type fakeAudit struct {
	entries []*domain.AuditEntry
}

func (f *fakeAudit) Append(_ context.Context, entry *domain.AuditEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAudit) actions() []string {
	result := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		result = append(result, e.Action)
	}
	return result
}

type fakeEvents struct {
	events []domain.Event
}

func (f *fakeEvents) Publish(_ context.Context, event domain.Event) error {
	f.events = append(f.events, event)
	return nil
}

// passthroughTxManager выполняет функцию без настоящей транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
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

type fixture struct {
	svc       *Service
	bookings  *fakeBookingRepo
	payments  *fakePaymentRepo
	inventory *fakeInventory
	audit     *fakeAudit
	events    *fakeEvents
}

func newFixture(status domain.BookingStatus) *fixture {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID:              1,
			Reference:       uuid.New(),
			GuestID:         42,
			RoomTypeID:      7,
			StayRange:       domain.NewDateRange(date("2026-06-10"), date("2026-06-13")),
			RoomsBooked:     3,
			TotalPrice:      90000,
			DepositRequired: 18000,
			Status:          status,
		},
	}}
	payments := &fakePaymentRepo{}
	inventory := &fakeInventory{}
	audit := &fakeAudit{}
	events := &fakeEvents{}

	svc := NewService(
		bookings,
		payments,
		inventory,
		audit,
		events,
		passthroughTxManager{},
		&fixedTimeProvider{now: date("2026-06-01")},
		nopLogger{},
	)

	return &fixture{svc: svc, bookings: bookings, payments: payments, inventory: inventory, audit: audit, events: events}
}

func TestCancel_FromConfirmedReleasesInventoryOnce(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)

	result, err := f.svc.Cancel(context.Background(), 1, "guest:42", "plans changed")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), result.Status)
	require.NotNil(t, result.CancellationReason)
	assert.Equal(t, "plans changed", *result.CancellationReason)

	// Инвентарь освобожден ровно один раз и ровно на зарезервированный объем
	require.Len(t, f.inventory.releases, 1)
	assert.Equal(t, int64(7), f.inventory.releases[0].roomTypeID)
	assert.Equal(t, 3, f.inventory.releases[0].count)

	// Ровно одна запись в аудите
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, domain.AuditActionBookingCancelled, f.audit.entries[0].Action)
	assert.Equal(t, domain.StatusConfirmed, *f.audit.entries[0].StatusBefore)
	assert.Equal(t, domain.StatusCancelled, *f.audit.entries[0].StatusAfter)

	// Событие после коммита
	require.Len(t, f.events.events, 1)
	assert.Equal(t, domain.EventBookingCancelled, f.events.events[0].Type)
}

func TestCancel_ReleaseViolationAudited(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)
	f.inventory.violations = []time.Time{date("2026-06-11")}

	_, err := f.svc.Cancel(context.Background(), 1, "guest:42", "plans changed")
	require.NoError(t, err, "accounting violation does not fail the cancellation")

	// Нарушение учета и сама отмена — отдельные записи аудита
	assert.Equal(t, []string{domain.AuditActionInventoryViolation, domain.AuditActionBookingCancelled}, f.audit.actions())
	assert.Equal(t, "system", f.audit.entries[0].Actor)
	assert.Equal(t, "2026-06-11", f.audit.entries[0].Metadata["day"])
}

func TestCancel_IllegalStatusesRejected(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCheckedIn, domain.StatusCheckedOut, domain.StatusCompleted, domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(status)

			_, err := f.svc.Cancel(context.Background(), 1, "guest:42", "late cancel")
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Empty(t, f.inventory.releases, "inventory must not be released")
			assert.Empty(t, f.audit.entries)
			assert.Empty(t, f.events.events)
		})
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	f := newFixture(domain.StatusProvisional)

	long := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}

	_, err := f.svc.Cancel(context.Background(), 1, "guest:42", string(long))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckIn_RequiresConfirmed(t *testing.T) {
	f := newFixture(domain.StatusProvisional)

	_, err := f.svc.CheckIn(context.Background(), 1, "staff:9")
	assert.ErrorIs(t, err, ErrInvalidTransition, "check-in from provisional must be rejected")

	f = newFixture(domain.StatusConfirmed)
	result, err := f.svc.CheckIn(context.Background(), 1, "staff:9")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCheckedIn), result.Status)
	assert.Equal(t, []string{domain.AuditActionCheckIn}, f.audit.actions())
}

func TestCheckOutAndComplete(t *testing.T) {
	f := newFixture(domain.StatusCheckedIn)

	result, err := f.svc.CheckOut(context.Background(), 1, "staff:9")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCheckedOut), result.Status)

	result, err = f.svc.Complete(context.Background(), 1, "staff:9")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), result.Status)

	assert.Equal(t, []string{domain.AuditActionCheckOut, domain.AuditActionCompleted}, f.audit.actions())
	assert.Empty(t, f.events.events, "operational transitions emit no events")
}

func TestHandlePaymentOutcome_DepositConfirms(t *testing.T) {
	f := newFixture(domain.StatusProvisional)

	// Депозит 18000 — платеж ровно на депозит подтверждает бронирование
	result, err := f.svc.HandlePaymentOutcome(context.Background(), 1, 18000, true, ptr.Ptr("pay_001"))
	require.NoError(t, err)

	assert.True(t, result.Confirmed)
	assert.Equal(t, string(domain.StatusConfirmed), result.Booking.Status)
	assert.Equal(t, []string{domain.AuditActionPaymentRecorded, domain.AuditActionBookingConfirmed}, f.audit.actions())

	require.Len(t, f.events.events, 1)
	assert.Equal(t, domain.EventBookingConfirmed, f.events.events[0].Type)
}

func TestHandlePaymentOutcome_PartialPaymentDoesNotConfirm(t *testing.T) {
	f := newFixture(domain.StatusProvisional)

	result, err := f.svc.HandlePaymentOutcome(context.Background(), 1, 10000, true, nil)
	require.NoError(t, err)

	assert.False(t, result.Confirmed)
	assert.Equal(t, string(domain.StatusProvisional), result.Booking.Status)
	assert.Empty(t, f.events.events)

	// Доплата до депозита подтверждает
	result, err = f.svc.HandlePaymentOutcome(context.Background(), 1, 8000, true, nil)
	require.NoError(t, err)
	assert.True(t, result.Confirmed)
}

func TestHandlePaymentOutcome_FailedPaymentRecordedOnly(t *testing.T) {
	f := newFixture(domain.StatusProvisional)

	result, err := f.svc.HandlePaymentOutcome(context.Background(), 1, 18000, false, nil)
	require.NoError(t, err)

	assert.False(t, result.Confirmed)
	assert.Equal(t, string(domain.StatusProvisional), result.Booking.Status)

	// Платеж зафиксирован со статусом failed
	require.Len(t, f.payments.payments, 1)
	assert.Equal(t, domain.PaymentFailed, f.payments.payments[0].Status)

	// Failed-платежи не учитываются в оплаченной сумме
	sum, _ := f.payments.SumSucceededByBooking(context.Background(), 1)
	assert.Equal(t, int64(0), sum)
}

func TestHandlePaymentOutcome_PaymentOnConfirmedDoesNotTransition(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)

	result, err := f.svc.HandlePaymentOutcome(context.Background(), 1, 72000, true, nil)
	require.NoError(t, err)

	assert.False(t, result.Confirmed, "already confirmed, no second transition")
	assert.Equal(t, string(domain.StatusConfirmed), result.Booking.Status)
	assert.Equal(t, []string{domain.AuditActionPaymentRecorded}, f.audit.actions())
}

func TestRecordOfflinePayment_ConfirmsLikeOnline(t *testing.T) {
	f := newFixture(domain.StatusProvisional)

	result, err := f.svc.RecordOfflinePayment(context.Background(), 1, 18000, "staff:9")
	require.NoError(t, err)

	assert.True(t, result.Confirmed)
	require.Len(t, f.payments.payments, 1)
	assert.Equal(t, domain.PaymentOffline, f.payments.payments[0].Method)
	assert.Equal(t, []string{domain.AuditActionOfflinePayment, domain.AuditActionBookingConfirmed}, f.audit.actions())
}

func TestForceStatus_ValidatesTransitionTable(t *testing.T) {
	f := newFixture(domain.StatusProvisional)

	// Принудительный переход все равно проверяется по таблице
	_, err := f.svc.ForceStatus(context.Background(), 1, string(domain.StatusCheckedIn), "admin:1", "manual fix")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.ForceStatus(context.Background(), 1, "bogus", "admin:1", "manual fix")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestForceStatus_ToCancelledReleasesInventory(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)

	result, err := f.svc.ForceStatus(context.Background(), 1, string(domain.StatusCancelled), "admin:1", "overbooking fix")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), result.Status)
	require.Len(t, f.inventory.releases, 1, "forced cancellation must release inventory")
}

func TestForceStatus_ToConfirmedPublishesEvent(t *testing.T) {
	f := newFixture(domain.StatusProvisional)

	result, err := f.svc.ForceStatus(context.Background(), 1, string(domain.StatusConfirmed), "admin:1", "manual confirm")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), result.Status)
	require.Len(t, f.events.events, 1)
	assert.Equal(t, domain.EventBookingConfirmed, f.events.events[0].Type)

	// Событие строится из бронирования, возвращенного переходом:
	// повторного чтения после коммита нет
	assert.Equal(t, 1, f.bookings.getCalls)
}

func TestGetGuestBookings_StatusFilter(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)

	confirmed := string(domain.StatusConfirmed)
	result, err := f.svc.GetGuestBookings(context.Background(), 42, &confirmed)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	cancelled := string(domain.StatusCancelled)
	result, err = f.svc.GetGuestBookings(context.Background(), 42, &cancelled)
	require.NoError(t, err)
	assert.Empty(t, result)

	bogus := "bogus"
	_, err = f.svc.GetGuestBookings(context.Background(), 42, &bogus)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(domain.StatusProvisional)

	_, err := f.svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
