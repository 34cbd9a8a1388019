package payment_callback

// Исходы платежа, которые присылает платежный провайдер
const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
)

// PaymentCallbackRequest HTTP request model (webhook платежного провайдера)
type PaymentCallbackRequest struct {
	BookingID   int64   `json:"bookingId"`
	Amount      int64   `json:"amount"`
	Outcome     string  `json:"outcome"` // "succeeded" | "failed"
	ExternalRef *string `json:"externalRef,omitempty"`
}
