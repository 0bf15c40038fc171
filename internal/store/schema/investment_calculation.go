package schema

import (
	"time"

	"gorm.io/gorm"
)

// InvestmentCalculation represents the investment_calculations table - calculator results saved against a contact
type InvestmentCalculation struct {
	ID                    string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	PropertyType          string    `gorm:"column:property_type;not null;type:text" json:"propertyType"`
	MarketArea            string    `gorm:"column:market_area;not null;type:text" json:"marketArea"`
	InvestmentAmount      float64   `gorm:"column:investment_amount;not null" json:"investmentAmount"`
	HoldPeriod            int       `gorm:"column:hold_period;not null" json:"holdPeriod"`
	AnnualReturnRate      float64   `gorm:"column:annual_return_rate;not null" json:"annualReturnRate"`
	PropertyManagementFee float64   `gorm:"column:property_management_fee;not null" json:"propertyManagementFee"`
	VacancyRate           float64   `gorm:"column:vacancy_rate;not null" json:"vacancyRate"`
	MonthlyCashFlow       float64   `gorm:"column:monthly_cash_flow;not null" json:"monthlyCashFlow"`
	AnnualCashFlow        float64   `gorm:"column:annual_cash_flow;not null" json:"annualCashFlow"`
	TotalReturn           float64   `gorm:"column:total_return;not null" json:"totalReturn"`
	ROI                   float64   `gorm:"column:roi;not null" json:"roi"`
	Notes                 *string   `gorm:"column:notes;type:text" json:"notes"`
	ContactID             string    `gorm:"column:contact_id;not null;type:uuid;index" json:"contactId"`
	CreatedBy             string    `gorm:"column:created_by;not null;type:uuid;index" json:"createdBy"`
	CreatedAt             time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"createdAt"`
	UpdatedAt             time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updatedAt"`

	// Associations
	Contact *ContactSummary `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	User    *UserSummary    `gorm:"foreignKey:CreatedBy" json:"user,omitempty"`
}

// TableName specifies the table name for the InvestmentCalculation model
func (InvestmentCalculation) TableName() string {
	return "investment_calculations"
}

// BeforeCreate assigns a primary key when none was provided
func (c *InvestmentCalculation) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	return nil
}
