package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"provisional to confirmed", StatusProvisional, StatusConfirmed, true},
		{"provisional to cancelled", StatusProvisional, StatusCancelled, true},
		{"provisional to checked_in", StatusProvisional, StatusCheckedIn, false},
		{"provisional to completed", StatusProvisional, StatusCompleted, false},
		{"confirmed to checked_in", StatusConfirmed, StatusCheckedIn, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, false},
		{"checked_in to checked_out", StatusCheckedIn, StatusCheckedOut, true},
		{"checked_in to cancelled", StatusCheckedIn, StatusCancelled, false},
		{"checked_out to completed", StatusCheckedOut, StatusCompleted, true},
		{"checked_out to cancelled", StatusCheckedOut, StatusCancelled, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusProvisional, false},
		{"no self transition", StatusConfirmed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []BookingStatus{
		StatusProvisional, StatusConfirmed, StatusCheckedIn,
		StatusCheckedOut, StatusCompleted, StatusCancelled,
	} {
		assert.True(t, ValidStatus(s), "status %s must be valid", s)
	}

	assert.False(t, ValidStatus("unknown"))
	assert.False(t, ValidStatus(""))
}

func TestBooking_IsTerminal(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusProvisional}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusCheckedIn}).IsTerminal())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusProvisional}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCheckedIn}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCheckedOut}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_RequiredPayment(t *testing.T) {
	// Депозит требуется — подтверждение по депозиту
	withDeposit := &Booking{TotalPrice: 100000, DepositRequired: 20000}
	assert.Equal(t, int64(20000), withDeposit.RequiredPayment())

	// Депозит не требуется — подтверждение по полной стоимости
	noDeposit := &Booking{TotalPrice: 100000, DepositRequired: 0}
	assert.Equal(t, int64(100000), noDeposit.RequiredPayment())
}

func TestBooking_HoldsInventory(t *testing.T) {
	for _, s := range []BookingStatus{
		StatusProvisional, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCompleted,
	} {
		assert.True(t, (&Booking{Status: s}).HoldsInventory(), "status %s holds inventory", s)
	}
	assert.False(t, (&Booking{Status: StatusCancelled}).HoldsInventory())
}
