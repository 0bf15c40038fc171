package schema

import (
	"time"

	"gorm.io/gorm"

	"github.com/feral-file/realty-crm/internal/domain"
)

// AiMessage represents the ai_messages table - the append-only conversation log between a user and the assistant about one contact
type AiMessage struct {
	ID         string            `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Message    string            `gorm:"column:message;not null;type:text" json:"message"`
	SenderType domain.SenderType `gorm:"column:sender_type;not null;type:text" json:"senderType"`
	UserID     string            `gorm:"column:user_id;not null;type:uuid;index:idx_ai_messages_user_contact,priority:1" json:"userId"`
	ContactID  string            `gorm:"column:contact_id;not null;type:uuid;index:idx_ai_messages_user_contact,priority:2" json:"contactId"`
	CreatedAt  time.Time         `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"createdAt"`

	// DeliveryStatus tracks the hand-off of USER messages to the automation webhook
	DeliveryStatus domain.DeliveryStatus `gorm:"column:delivery_status;not null;type:text;default:none" json:"deliveryStatus"`
	// DeliveryAttempts is the number of HTTP attempts made so far
	DeliveryAttempts int `gorm:"column:delivery_attempts;not null;default:0" json:"deliveryAttempts"`
	// DeliveryError is the last delivery error, if any
	DeliveryError *string `gorm:"column:delivery_error;type:text" json:"deliveryError,omitempty"`
	// DeliveredAt is set once the webhook accepted the message
	DeliveredAt *time.Time `gorm:"column:delivered_at;type:timestamptz" json:"deliveredAt,omitempty"`
	// DeliveryWorkflowID is the Temporal workflow delivering this message
	DeliveryWorkflowID *string `gorm:"column:delivery_workflow_id;type:text" json:"-"`

	// Associations
	User    *UserSummary    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Contact *ContactSummary `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
}

// TableName specifies the table name for the AiMessage model
func (AiMessage) TableName() string {
	return "ai_messages"
}

// BeforeCreate assigns a primary key and the initial delivery status
func (m *AiMessage) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = newID()
	}
	if m.DeliveryStatus == "" {
		m.DeliveryStatus = domain.DeliveryStatusNone
	}
	return nil
}
