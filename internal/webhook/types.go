package webhook

import "github.com/feral-file/realty-crm/internal/domain"

// Event type constants
const (
	// EventTypeUserReply is fired when a user writes a reply to the assistant
	EventTypeUserReply = "ai.reply.user"
)

// Header names used by outbound deliveries and inbound verification
const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderEventID   = "X-Webhook-Event-ID"
	HeaderEventType = "X-Webhook-Event-Type"
	HeaderTimestamp = "X-Webhook-Timestamp"
	HeaderSecret    = domain.WEBHOOK_SECRET_HEADER

	// UserAgent identifies outbound deliveries
	UserAgent = "Realty-CRM-Webhook/1.0"
)

// signaturePrefix is the algorithm prefix of every signature header value
const signaturePrefix = "sha256="

// DeliveryResult represents the result of a webhook delivery attempt
type DeliveryResult struct {
	// Success indicates whether the delivery was successful
	Success bool
	// StatusCode is the HTTP status code returned by the webhook endpoint
	StatusCode int
	// Body is the response body (limited to 4KB)
	Body string
	// Error contains error details if delivery failed
	Error string
}
