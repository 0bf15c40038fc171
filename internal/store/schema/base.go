package schema

import (
	"github.com/google/uuid"
)

// newID returns a random UUID string for primary keys generated on the client side
func newID() string {
	return uuid.NewString()
}

// UserSummary is the reduced user projection joined into owned rows
type UserSummary struct {
	ID   string `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

// TableName specifies the table name for the UserSummary projection
func (UserSummary) TableName() string {
	return "users"
}

// ContactSummary is the reduced contact projection joined into contact-scoped rows
type ContactSummary struct {
	ID          string  `gorm:"column:id;primaryKey" json:"id"`
	Name        string  `gorm:"column:name" json:"name"`
	PhoneNumber *string `gorm:"column:phone_number" json:"phoneNumber,omitempty"`
	Email       *string `gorm:"column:email" json:"email,omitempty"`
}

// TableName specifies the table name for the ContactSummary projection
func (ContactSummary) TableName() string {
	return "contacts"
}

// VideoSummary is the reduced video projection joined into feedback rows
type VideoSummary struct {
	ID    string `gorm:"column:id;primaryKey" json:"id"`
	Title string `gorm:"column:title" json:"title"`
}

// TableName specifies the table name for the VideoSummary projection
func (VideoSummary) TableName() string {
	return "videos"
}
