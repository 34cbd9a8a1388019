package record_offline_payment

// OfflinePaymentRequest HTTP request model
type OfflinePaymentRequest struct {
	Amount int64 `json:"amount"`
}
