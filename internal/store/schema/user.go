package schema

import (
	"time"

	"gorm.io/gorm"

	"github.com/feral-file/realty-crm/internal/domain"
)

// User represents the users table - accounts are provisioned by the identity service and only read here
type User struct {
	// ID is the UUID primary key, also the JWT subject
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text" json:"name"`
	// PhoneNumber is the user's phone number
	PhoneNumber *string `gorm:"column:phone_number;type:text" json:"phoneNumber,omitempty"`
	// Email is the login email
	Email *string `gorm:"column:email;type:text;uniqueIndex" json:"email,omitempty"`
	// CompanyName is the brokerage or company the user works for
	CompanyName *string `gorm:"column:company_name;type:text" json:"companyName,omitempty"`
	// Logo is a URL to the company logo
	Logo *string `gorm:"column:logo;type:text" json:"logo,omitempty"`
	// Timezone is an IANA timezone name
	Timezone *string `gorm:"column:timezone;type:text" json:"timezone,omitempty"`
	// Role is USER or ADMIN
	Role      domain.Role `gorm:"column:role;not null;type:text;default:USER" json:"role"`
	CreatedAt time.Time   `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updatedAt"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a primary key when none was provided
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = newID()
	}
	return nil
}
