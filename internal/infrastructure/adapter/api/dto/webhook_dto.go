package dto

// WebhookResponse acknowledges a processor delivery
type WebhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
