package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

// Required body keys per entity, in the order they are reported when missing
var (
	ContactRequiredFields     = []string{"name"}
	CalculationRequiredFields = []string{
		"propertyType",
		"marketArea",
		"investmentAmount",
		"holdPeriod",
		"annualReturnRate",
		"propertyManagementFee",
		"vacancyRate",
		"monthlyCashFlow",
		"annualCashFlow",
		"totalReturn",
		"roi",
		"contactId",
	}
	QuestionnaireRequiredFields = []string{
		"isAccreditedInvestor",
		"hasInvestedBefore",
		"lookingTimeframe",
		"primaryInvestmentGoal",
		"investmentTimeline",
		"capitalToInvest",
		"useFinancing",
		"marketsInterested",
		"propertyTypesInterested",
		"investmentTimeframe",
		"contactId",
	}
)

// Writable keys per entity for partial updates
var (
	ContactUpdateFields = map[string]UpdateField{
		"name":          {Column: "name", Decode: StringField},
		"phoneNumber":   {Column: "phone_number", Decode: NullableStringField},
		"email":         {Column: "email", Decode: NullableStringField},
		"address":       {Column: "address", Decode: NullableStringField},
		"tags":          {Column: "tags", Decode: StringSliceField},
		"notes":         {Column: "notes", Decode: NullableStringField},
		"status":        {Column: "status", Decode: StringField},
		"pipelineStage": {Column: "pipeline_stage", Decode: NullableStringField},
		"pin":           {Column: "pin", Decode: NullableStringField},
	}
	CalculationUpdateFields = map[string]UpdateField{
		"propertyType":          {Column: "property_type", Decode: StringField},
		"marketArea":            {Column: "market_area", Decode: StringField},
		"investmentAmount":      {Column: "investment_amount", Decode: FloatField},
		"holdPeriod":            {Column: "hold_period", Decode: IntField},
		"annualReturnRate":      {Column: "annual_return_rate", Decode: FloatField},
		"propertyManagementFee": {Column: "property_management_fee", Decode: FloatField},
		"vacancyRate":           {Column: "vacancy_rate", Decode: FloatField},
		"monthlyCashFlow":       {Column: "monthly_cash_flow", Decode: FloatField},
		"annualCashFlow":        {Column: "annual_cash_flow", Decode: FloatField},
		"totalReturn":           {Column: "total_return", Decode: FloatField},
		"roi":                   {Column: "roi", Decode: FloatField},
		"notes":                 {Column: "notes", Decode: NullableStringField},
		"contactId":             {Column: "contact_id", Decode: StringField},
	}
	QuestionnaireUpdateFields = map[string]UpdateField{
		"isAccreditedInvestor":    {Column: "is_accredited_investor", Decode: BoolField},
		"hasInvestedBefore":       {Column: "has_invested_before", Decode: BoolField},
		"lookingTimeframe":        {Column: "looking_timeframe", Decode: StringField},
		"primaryInvestmentGoal":   {Column: "primary_investment_goal", Decode: StringField},
		"investmentTimeline":      {Column: "investment_timeline", Decode: StringField},
		"capitalToInvest":         {Column: "capital_to_invest", Decode: StringField},
		"useFinancing":            {Column: "use_financing", Decode: StringField},
		"marketsInterested":       {Column: "markets_interested", Decode: CoercedStringSliceField},
		"propertyTypesInterested": {Column: "property_types_interested", Decode: CoercedStringSliceField},
		"investmentTimeframe":     {Column: "investment_timeframe", Decode: StringField},
		"notes":                   {Column: "notes", Decode: NullableStringField},
		"contactId":               {Column: "contact_id", Decode: StringField},
	}
	VideoUpdateFields = map[string]UpdateField{
		"title":        {Column: "title", Decode: StringField},
		"videoUrl":     {Column: "video_url", Decode: StringField},
		"thumbnailUrl": {Column: "thumbnail_url", Decode: NullableStringField},
		"isPublished":  {Column: "is_published", Decode: BoolField},
	}
	FeedbackUpdateFields = map[string]UpdateField{
		"videoId":   {Column: "video_id", Decode: StringField},
		"responses": {Column: "responses", Decode: JSONObjectField},
		"contactId": {Column: "contact_id", Decode: NullableStringField},
	}
)

// CreateContactRequest represents the request body for creating a contact
type CreateContactRequest struct {
	Name          string   `json:"name"`
	PhoneNumber   *string  `json:"phoneNumber"`
	Email         *string  `json:"email"`
	Address       *string  `json:"address"`
	Tags          []string `json:"tags"`
	Notes         *string  `json:"notes"`
	Status        *string  `json:"status"`
	PipelineStage *string  `json:"pipelineStage"`
	Pin           *string  `json:"pin"`
}

// ToSchema converts the request into a contact owned by ownerID
func (r *CreateContactRequest) ToSchema(ownerID string) *schema.Contact {
	contact := &schema.Contact{
		Name:          r.Name,
		PhoneNumber:   r.PhoneNumber,
		Email:         r.Email,
		Address:       r.Address,
		Tags:          datatypes.JSONSlice[string](domain.MergeTags(nil, r.Tags)),
		Notes:         r.Notes,
		PipelineStage: r.PipelineStage,
		Pin:           r.Pin,
		CreatedBy:     ownerID,
	}
	if r.Status != nil {
		contact.Status = domain.ContactStatus(*r.Status)
	}
	return contact
}

// CreateCalculationRequest represents the request body for creating an investment calculation
type CreateCalculationRequest struct {
	PropertyType          string  `json:"propertyType"`
	MarketArea            string  `json:"marketArea"`
	InvestmentAmount      float64 `json:"investmentAmount"`
	HoldPeriod            int     `json:"holdPeriod"`
	AnnualReturnRate      float64 `json:"annualReturnRate"`
	PropertyManagementFee float64 `json:"propertyManagementFee"`
	VacancyRate           float64 `json:"vacancyRate"`
	MonthlyCashFlow       float64 `json:"monthlyCashFlow"`
	AnnualCashFlow        float64 `json:"annualCashFlow"`
	TotalReturn           float64 `json:"totalReturn"`
	ROI                   float64 `json:"roi"`
	Notes                 *string `json:"notes"`
	ContactID             string  `json:"contactId"`
}

// ToSchema converts the request into a calculation owned by ownerID
func (r *CreateCalculationRequest) ToSchema(ownerID string) *schema.InvestmentCalculation {
	return &schema.InvestmentCalculation{
		PropertyType:          r.PropertyType,
		MarketArea:            r.MarketArea,
		InvestmentAmount:      r.InvestmentAmount,
		HoldPeriod:            r.HoldPeriod,
		AnnualReturnRate:      r.AnnualReturnRate,
		PropertyManagementFee: r.PropertyManagementFee,
		VacancyRate:           r.VacancyRate,
		MonthlyCashFlow:       r.MonthlyCashFlow,
		AnnualCashFlow:        r.AnnualCashFlow,
		TotalReturn:           r.TotalReturn,
		ROI:                   r.ROI,
		Notes:                 r.Notes,
		ContactID:             r.ContactID,
		CreatedBy:             ownerID,
	}
}

// CreateQuestionnaireRequest represents the request body for creating an investor questionnaire
type CreateQuestionnaireRequest struct {
	IsAccreditedInvestor    bool            `json:"isAccreditedInvestor"`
	HasInvestedBefore       bool            `json:"hasInvestedBefore"`
	LookingTimeframe        string          `json:"lookingTimeframe"`
	PrimaryInvestmentGoal   string          `json:"primaryInvestmentGoal"`
	InvestmentTimeline      string          `json:"investmentTimeline"`
	CapitalToInvest         string          `json:"capitalToInvest"`
	UseFinancing            string          `json:"useFinancing"`
	MarketsInterested       json.RawMessage `json:"marketsInterested"`
	PropertyTypesInterested json.RawMessage `json:"propertyTypesInterested"`
	InvestmentTimeframe     string          `json:"investmentTimeframe"`
	Notes                   *string         `json:"notes"`
	ContactID               string          `json:"contactId"`
}

// ToSchema converts the request into a questionnaire owned by ownerID, coercing malformed arrays to empty
func (r *CreateQuestionnaireRequest) ToSchema(ownerID string) *schema.InvestorQuestionnaire {
	return &schema.InvestorQuestionnaire{
		IsAccreditedInvestor:    r.IsAccreditedInvestor,
		HasInvestedBefore:       r.HasInvestedBefore,
		LookingTimeframe:        r.LookingTimeframe,
		PrimaryInvestmentGoal:   r.PrimaryInvestmentGoal,
		InvestmentTimeline:      r.InvestmentTimeline,
		CapitalToInvest:         r.CapitalToInvest,
		UseFinancing:            r.UseFinancing,
		MarketsInterested:       CoerceStringSlice(r.MarketsInterested),
		PropertyTypesInterested: CoerceStringSlice(r.PropertyTypesInterested),
		InvestmentTimeframe:     r.InvestmentTimeframe,
		Notes:                   r.Notes,
		ContactID:               r.ContactID,
		CreatedBy:               ownerID,
	}
}

// CreateVideoRequest represents the request body for creating a video
type CreateVideoRequest struct {
	Title        string  `json:"title"`
	VideoURL     string  `json:"videoUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	IsPublished  *bool   `json:"isPublished"`
}

// ToSchema converts the request into a video owned by ownerID, published unless stated otherwise
func (r *CreateVideoRequest) ToSchema(ownerID string) *schema.Video {
	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}
	return &schema.Video{
		Title:        r.Title,
		VideoURL:     r.VideoURL,
		ThumbnailURL: r.ThumbnailURL,
		IsPublished:  published,
		CreatedBy:    ownerID,
	}
}

// CreateFeedbackRequest represents the request body for submitting video feedback
type CreateFeedbackRequest struct {
	VideoID   string          `json:"videoId"`
	Responses json.RawMessage `json:"responses"`
	ContactID *string         `json:"contactId"`
}

// ToSchema converts the request into a feedback row
func (r *CreateFeedbackRequest) ToSchema() *schema.VideoFeedback {
	return &schema.VideoFeedback{
		VideoID:   r.VideoID,
		Responses: datatypes.JSON(r.Responses),
		ContactID: r.ContactID,
	}
}

// TagsRequest represents the request body for adding or removing contact tags
type TagsRequest struct {
	Tags []string `json:"tags"`
}

// ReplyRequest represents the request body of a user reply to the assistant
type ReplyRequest struct {
	Message   string `json:"message"`
	ContactID string `json:"contactId"`
}

// InboundMessage represents the body posted by the automation platform
type InboundMessage struct {
	Message   string `json:"message"`
	ContactID string `json:"contactId"`
	UserID    string `json:"userId"`
}

// ListQuery holds the raw paging and sorting parameters of a list request
type ListQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  *int   `form:"limit"`
	SortBy string `form:"sortBy,default=createdAt"`
	Order  string `form:"order,default=desc"`
}

// ContactListQuery holds the query parameters of the contact list
type ContactListQuery struct {
	ListQuery
	Status        *string `form:"status"`
	PipelineStage *string `form:"pipelineStage"`
	Tag           *string `form:"tag"`
	Search        *string `form:"search"`
}

// CalculationListQuery holds the query parameters of the investment calculation list
type CalculationListQuery struct {
	ListQuery
	ContactID    *string `form:"contactId"`
	PropertyType *string `form:"propertyType"`
	MarketArea   *string `form:"marketArea"`
}

// QuestionnaireListQuery holds the query parameters of the investor questionnaire list
type QuestionnaireListQuery struct {
	ListQuery
	ContactID            *string `form:"contactId"`
	IsAccreditedInvestor *string `form:"isAccreditedInvestor"`
}

// VideoListQuery holds the query parameters of the video list
type VideoListQuery struct {
	ListQuery
	IsPublished *string `form:"isPublished"`
}

// FeedbackListQuery holds the query parameters of the video feedback list
type FeedbackListQuery struct {
	ListQuery
	VideoID   *string `form:"videoId"`
	ContactID *string `form:"contactId"`
}
