package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions
const (
	AuditActionBookingCreated     = "booking_created"
	AuditActionBookingConfirmed   = "booking_confirmed"
	AuditActionBookingCancelled   = "booking_cancelled"
	AuditActionCheckIn            = "check_in"
	AuditActionCheckOut           = "check_out"
	AuditActionCompleted          = "completed"
	AuditActionPaymentRecorded    = "payment_recorded"
	AuditActionOfflinePayment     = "offline_payment_recorded"
	AuditActionForcedStatus       = "forced_status_change"
	AuditActionCalendarEdit       = "calendar_override_edit"
	AuditActionRoomTypeEdit       = "room_type_edit"
	AuditActionRuleEdit           = "guest_rule_edit"
	AuditActionInventoryViolation = "inventory_invariant_violation"
)

// AuditEntry запись журнала аудита
// Записи неизменяемы: журнал только дописывается, никогда не обновляется
// и не удаляется.
type AuditEntry struct {
	ID     uuid.UUID
	Actor  string
	Action string

	// BookingID ссылка на бронирование; nil для записей, не связанных
	// с конкретным бронированием (например, правка календаря)
	BookingID *int64

	StatusBefore *BookingStatus
	StatusAfter  *BookingStatus

	Reason   *string
	Metadata map[string]interface{}

	CreatedAt time.Time
}
