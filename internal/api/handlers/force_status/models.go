package force_status

// ForceStatusRequest HTTP request model
type ForceStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}
