package schema

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VideoFeedback represents the video_feedbacks table - anonymous or contact-linked answers about a video
type VideoFeedback struct {
	ID      string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	VideoID string `gorm:"column:video_id;not null;type:uuid;index" json:"videoId"`
	// Responses is an opaque JSON object of question/answer pairs
	Responses datatypes.JSON `gorm:"column:responses;not null;type:jsonb" json:"responses"`
	// ContactID optionally links the feedback to a contact
	ContactID *string   `gorm:"column:contact_id;type:uuid;index" json:"contactId"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updatedAt"`

	// Associations
	Video   *VideoSummary   `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	Contact *ContactSummary `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
}

// TableName specifies the table name for the VideoFeedback model
func (VideoFeedback) TableName() string {
	return "video_feedbacks"
}

// BeforeCreate assigns a primary key when none was provided
func (f *VideoFeedback) BeforeCreate(_ *gorm.DB) error {
	if f.ID == "" {
		f.ID = newID()
	}
	return nil
}
