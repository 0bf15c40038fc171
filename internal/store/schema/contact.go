package schema

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/realty-crm/internal/domain"
)

// Contact represents the contacts table - leads and clients owned by the user who created them
type Contact struct {
	// ID is the UUID primary key
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	// Name is the contact's display name
	Name string `gorm:"column:name;not null;type:text" json:"name"`
	// PhoneNumber is also the lookup key for PIN verification
	PhoneNumber *string `gorm:"column:phone_number;type:text;index" json:"phoneNumber"`
	Email       *string `gorm:"column:email;type:text" json:"email"`
	Address     *string `gorm:"column:address;type:text" json:"address"`
	// Tags is an ordered set of labels
	Tags  datatypes.JSONSlice[string] `gorm:"column:tags;not null;type:jsonb;default:'[]'" json:"tags"`
	Notes *string                     `gorm:"column:notes;type:text" json:"notes"`
	// Status is lead, client or former_client
	Status domain.ContactStatus `gorm:"column:status;not null;type:text;default:lead" json:"status"`
	// PipelineStage is a free-text sales pipeline stage
	PipelineStage *string `gorm:"column:pipeline_stage;type:text" json:"pipelineStage"`
	// Pin is the verification PIN issued to the contact
	Pin *string `gorm:"column:pin;type:text" json:"pin,omitempty"`
	// CreatedBy is the owning user
	CreatedBy string    `gorm:"column:created_by;not null;type:uuid;index" json:"createdBy"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updatedAt"`
}

// TableName specifies the table name for the Contact model
func (Contact) TableName() string {
	return "contacts"
}

// BeforeCreate assigns a primary key and normalizes defaults
func (c *Contact) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	if c.Tags == nil {
		c.Tags = datatypes.JSONSlice[string]{}
	}
	if c.Status == "" {
		c.Status = domain.ContactStatusLead
	}
	return nil
}
