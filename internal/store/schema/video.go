package schema

import (
	"time"

	"gorm.io/gorm"
)

// Video represents the videos table - instructional videos published by a user
type Video struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"column:title;not null;type:text" json:"title"`
	VideoURL     string    `gorm:"column:video_url;not null;type:text" json:"videoUrl"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url;type:text" json:"thumbnailUrl"`
	IsPublished  bool      `gorm:"column:is_published;not null" json:"isPublished"`
	CreatedBy    string    `gorm:"column:created_by;not null;type:uuid;index" json:"createdBy"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updatedAt"`

	// FeedbackCount is only populated by list queries
	FeedbackCount *int64 `gorm:"column:feedback_count;->;-:migration" json:"feedbackCount,omitempty"`

	// Associations
	User *UserSummary `gorm:"foreignKey:CreatedBy" json:"user,omitempty"`
}

// TableName specifies the table name for the Video model
func (Video) TableName() string {
	return "videos"
}

// BeforeCreate assigns a primary key when none was provided
func (v *Video) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = newID()
	}
	return nil
}
