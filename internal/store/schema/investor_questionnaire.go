package schema

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InvestorQuestionnaire represents the investor_questionnaires table - investor profile answers for a contact
type InvestorQuestionnaire struct {
	ID                    string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	IsAccreditedInvestor  bool   `gorm:"column:is_accredited_investor;not null" json:"isAccreditedInvestor"`
	HasInvestedBefore     bool   `gorm:"column:has_invested_before;not null" json:"hasInvestedBefore"`
	LookingTimeframe      string `gorm:"column:looking_timeframe;not null;type:text" json:"lookingTimeframe"`
	PrimaryInvestmentGoal string `gorm:"column:primary_investment_goal;not null;type:text" json:"primaryInvestmentGoal"`
	InvestmentTimeline    string `gorm:"column:investment_timeline;not null;type:text" json:"investmentTimeline"`
	CapitalToInvest       string `gorm:"column:capital_to_invest;not null;type:text" json:"capitalToInvest"`
	UseFinancing          string `gorm:"column:use_financing;not null;type:text" json:"useFinancing"`
	// MarketsInterested and PropertyTypesInterested are stored as JSON string arrays
	MarketsInterested       datatypes.JSONSlice[string] `gorm:"column:markets_interested;not null;type:jsonb;default:'[]'" json:"marketsInterested"`
	PropertyTypesInterested datatypes.JSONSlice[string] `gorm:"column:property_types_interested;not null;type:jsonb;default:'[]'" json:"propertyTypesInterested"`
	InvestmentTimeframe     string                      `gorm:"column:investment_timeframe;not null;type:text" json:"investmentTimeframe"`
	Notes                   *string                     `gorm:"column:notes;type:text" json:"notes"`
	ContactID               string                      `gorm:"column:contact_id;not null;type:uuid;index" json:"contactId"`
	CreatedBy               string                      `gorm:"column:created_by;not null;type:uuid;index" json:"createdBy"`
	CreatedAt               time.Time                   `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"createdAt"`
	UpdatedAt               time.Time                   `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updatedAt"`

	// Associations
	Contact *ContactSummary `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	User    *UserSummary    `gorm:"foreignKey:CreatedBy" json:"user,omitempty"`
}

// TableName specifies the table name for the InvestorQuestionnaire model
func (InvestorQuestionnaire) TableName() string {
	return "investor_questionnaires"
}

// BeforeCreate assigns a primary key and empty arrays
func (q *InvestorQuestionnaire) BeforeCreate(_ *gorm.DB) error {
	if q.ID == "" {
		q.ID = newID()
	}
	if q.MarketsInterested == nil {
		q.MarketsInterested = datatypes.JSONSlice[string]{}
	}
	if q.PropertyTypesInterested == nil {
		q.PropertyTypesInterested = datatypes.JSONSlice[string]{}
	}
	return nil
}
