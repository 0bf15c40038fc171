package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ReplyDeliveryStatus is the status of a reply delivery
type ReplyDeliveryStatus string

const (
	// ReplyDeliveryStatusPending is the status of a reply delivery that is still being attempted
	ReplyDeliveryStatusPending ReplyDeliveryStatus = "pending"
	// ReplyDeliveryStatusSuccess is the status of a reply delivery the webhook accepted
	ReplyDeliveryStatusSuccess ReplyDeliveryStatus = "success"
	// ReplyDeliveryStatusFailed is the status of a reply delivery whose last attempt failed
	ReplyDeliveryStatusFailed ReplyDeliveryStatus = "failed"
)

// ReplyDelivery represents the reply_deliveries table - audit log of outbound automation webhook attempts
type ReplyDelivery struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// MessageID is the USER message being delivered
	MessageID string `gorm:"column:message_id;not null;type:uuid;index"`
	// EventID is a unique identifier for this delivery (ULID for time-sortable uniqueness)
	EventID string `gorm:"column:event_id;not null;type:varchar(255)"`
	// Payload is the complete webhook payload as JSON
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// WorkflowID is the Temporal workflow ID handling this delivery
	WorkflowID string `gorm:"column:workflow_id;not null;type:varchar(255)"`
	// WorkflowRunID is the Temporal run ID for this workflow execution
	WorkflowRunID string `gorm:"column:workflow_run_id;type:varchar(255)"`
	// Status indicates the current status: pending, success, failed
	Status ReplyDeliveryStatus `gorm:"column:status;not null;default:pending"`
	// Attempts is the number of delivery attempts made
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// LastAttemptAt is the timestamp of the most recent delivery attempt
	LastAttemptAt *time.Time `gorm:"column:last_attempt_at;type:timestamptz"`
	// ResponseStatus is the HTTP status code from the webhook endpoint
	ResponseStatus *int `gorm:"column:response_status"`
	// ResponseBody is the response body from the webhook endpoint (limited to 4KB)
	ResponseBody string `gorm:"column:response_body;type:text"`
	// ErrorMessage contains error details if delivery failed
	ErrorMessage string `gorm:"column:error_message;type:text"`
	// CreatedAt is the timestamp when this delivery record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this delivery record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ReplyDelivery model
func (ReplyDelivery) TableName() string {
	return "reply_deliveries"
}
