package domain

// Business constants
const (
	// GroupBookingThreshold минимальное количество номеров, начиная с которого
	// бронирование считается групповым и требует депозит
	GroupBookingThreshold = 2

	// MaxRoomsPerBooking верхняя граница количества номеров в одном бронировании
	MaxRoomsPerBooking = 100

	// MaxCancellationReasonLength максимальная длина причины отмены
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Guest classifications known out of the box. The rules table may carry
// additional classifications; an unknown one is a configuration error.
const (
	ClassificationStandard       = "standard"
	ClassificationPriority       = "priority"
	ClassificationOrganizational = "organizational"
)
