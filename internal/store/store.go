package store

import (
	"context"
	"time"

	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

// Order is the sort direction of a list query
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Valid reports whether the order is asc or desc
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// SortableFields maps public sort names to column names for one entity
type SortableFields map[string]string

// Resolve returns the column for a public sort name
func (f SortableFields) Resolve(name string) (string, bool) {
	column, ok := f[name]
	return column, ok
}

var (
	ContactSortFields = SortableFields{
		"createdAt":     "created_at",
		"updatedAt":     "updated_at",
		"name":          "name",
		"status":        "status",
		"pipelineStage": "pipeline_stage",
	}
	CalculationSortFields = SortableFields{
		"createdAt":        "created_at",
		"updatedAt":        "updated_at",
		"investmentAmount": "investment_amount",
		"roi":              "roi",
		"totalReturn":      "total_return",
		"propertyType":     "property_type",
		"marketArea":       "market_area",
	}
	QuestionnaireSortFields = SortableFields{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	VideoSortFields = SortableFields{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"title":     "title",
	}
	FeedbackSortFields = SortableFields{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
)

// ListOptions holds the validated paging and sorting of a list query
type ListOptions struct {
	Page       int
	Limit      int
	SortColumn string
	Order      Order
}

// Offset returns the number of rows to skip
func (o ListOptions) Offset() int64 {
	if o.Page < 1 {
		return 0
	}
	return int64(o.Page-1) * int64(o.Limit)
}

// ContactFilter holds the equality filters for listing contacts
type ContactFilter struct {
	Status        *string
	PipelineStage *string
	Tag           *string
	Search        *string
}

// CalculationFilter holds the equality filters for listing investment calculations
type CalculationFilter struct {
	ContactID    *string
	PropertyType *string
	MarketArea   *string
}

// QuestionnaireFilter holds the equality filters for listing investor questionnaires
type QuestionnaireFilter struct {
	ContactID            *string
	IsAccreditedInvestor *bool
}

// VideoFilter holds the equality filters for listing videos
type VideoFilter struct {
	IsPublished *bool
}

// FeedbackFilter holds the equality filters for listing video feedback
type FeedbackFilter struct {
	VideoID   *string
	ContactID *string
}

// ReplyDeliveryUpdate describes the delivery state written to a USER message
type ReplyDeliveryUpdate struct {
	Status      domain.DeliveryStatus
	Attempts    *int
	Error       *string
	WorkflowID  *string
	DeliveredAt *time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Ping checks database connectivity
	Ping(ctx context.Context) error

	// =============================================================================
	// Users
	// =============================================================================

	// GetUserByID retrieves a user by ID, returns nil when missing
	GetUserByID(ctx context.Context, id string) (*schema.User, error)

	// =============================================================================
	// Contacts
	// =============================================================================

	// ListContacts lists contacts visible to the caller
	ListContacts(ctx context.Context, caller domain.Caller, filter ContactFilter, opts ListOptions) ([]schema.Contact, int64, error)
	// GetContact retrieves a contact visible to the caller, returns nil when missing or not visible
	GetContact(ctx context.Context, caller domain.Caller, id string) (*schema.Contact, error)
	// GetContactOwnedBy retrieves a contact created by the given user, returns nil otherwise
	GetContactOwnedBy(ctx context.Context, ownerID string, id string) (*schema.Contact, error)
	// ContactExists reports whether a contact exists regardless of owner
	ContactExists(ctx context.Context, id string) (bool, error)
	// CreateContact inserts a contact
	CreateContact(ctx context.Context, contact *schema.Contact) error
	// UpdateContact updates the contact if it is owned by ownerID, returns domain.ErrNotFound otherwise
	UpdateContact(ctx context.Context, ownerID string, id string, updates map[string]interface{}) (*schema.Contact, error)
	// DeleteContact deletes the contact if it is owned by ownerID, returns domain.ErrNotFound otherwise
	DeleteContact(ctx context.Context, ownerID string, id string) error
	// AddContactTags merges tags into the contact's tag set under a row lock
	AddContactTags(ctx context.Context, ownerID string, id string, tags []string) (*schema.Contact, error)
	// RemoveContactTags removes tags from the contact's tag set under a row lock
	RemoveContactTags(ctx context.Context, ownerID string, id string, tags []string) (*schema.Contact, error)
	// FindContactWithPinByPhone finds a contact visible to the caller with the phone number and a PIN set
	FindContactWithPinByPhone(ctx context.Context, caller domain.Caller, phoneNumber string) (*schema.Contact, error)

	// =============================================================================
	// Investment calculations
	// =============================================================================

	ListCalculations(ctx context.Context, caller domain.Caller, filter CalculationFilter, opts ListOptions) ([]schema.InvestmentCalculation, int64, error)
	GetCalculation(ctx context.Context, caller domain.Caller, id string) (*schema.InvestmentCalculation, error)
	CreateCalculation(ctx context.Context, calculation *schema.InvestmentCalculation) error
	UpdateCalculation(ctx context.Context, ownerID string, id string, updates map[string]interface{}) (*schema.InvestmentCalculation, error)
	DeleteCalculation(ctx context.Context, ownerID string, id string) error
	// ListCalculationsByContact lists calculations of one contact, newest first
	ListCalculationsByContact(ctx context.Context, caller domain.Caller, contactID string) ([]schema.InvestmentCalculation, error)

	// =============================================================================
	// Investor questionnaires
	// =============================================================================

	ListQuestionnaires(ctx context.Context, caller domain.Caller, filter QuestionnaireFilter, opts ListOptions) ([]schema.InvestorQuestionnaire, int64, error)
	GetQuestionnaire(ctx context.Context, caller domain.Caller, id string) (*schema.InvestorQuestionnaire, error)
	CreateQuestionnaire(ctx context.Context, questionnaire *schema.InvestorQuestionnaire) error
	UpdateQuestionnaire(ctx context.Context, ownerID string, id string, updates map[string]interface{}) (*schema.InvestorQuestionnaire, error)
	DeleteQuestionnaire(ctx context.Context, ownerID string, id string) error
	// ListQuestionnairesByContact lists questionnaires of one contact, newest first
	ListQuestionnairesByContact(ctx context.Context, caller domain.Caller, contactID string) ([]schema.InvestorQuestionnaire, error)

	// =============================================================================
	// Videos
	// =============================================================================

	ListVideos(ctx context.Context, caller domain.Caller, filter VideoFilter, opts ListOptions) ([]schema.Video, int64, error)
	GetVideo(ctx context.Context, caller domain.Caller, id string) (*schema.Video, error)
	// VideoExists reports whether a video exists regardless of owner
	VideoExists(ctx context.Context, id string) (bool, error)
	CreateVideo(ctx context.Context, video *schema.Video) error
	UpdateVideo(ctx context.Context, ownerID string, id string, updates map[string]interface{}) (*schema.Video, error)
	// DeleteVideo deletes an owned video without feedback
	// Returns domain.ErrNotFound when missing or not owned and domain.ErrReferenced when feedback exists
	DeleteVideo(ctx context.Context, ownerID string, id string) error
	// ToggleVideoPublished flips the publish flag of an owned video
	ToggleVideoPublished(ctx context.Context, ownerID string, id string) (*schema.Video, error)

	// =============================================================================
	// Video feedback
	// =============================================================================

	ListFeedbacks(ctx context.Context, filter FeedbackFilter, opts ListOptions) ([]schema.VideoFeedback, int64, error)
	GetFeedback(ctx context.Context, id string) (*schema.VideoFeedback, error)
	CreateFeedback(ctx context.Context, feedback *schema.VideoFeedback) error
	UpdateFeedback(ctx context.Context, id string, updates map[string]interface{}) (*schema.VideoFeedback, error)
	DeleteFeedback(ctx context.Context, id string) error
	ListFeedbacksByVideo(ctx context.Context, videoID string) ([]schema.VideoFeedback, error)
	ListFeedbacksByContact(ctx context.Context, contactID string) ([]schema.VideoFeedback, error)

	// =============================================================================
	// AI conversation
	// =============================================================================

	CreateAiMessage(ctx context.Context, message *schema.AiMessage) error
	GetAiMessage(ctx context.Context, id string) (*schema.AiMessage, error)
	// ListConversation lists the messages between a user and one contact, oldest first
	ListConversation(ctx context.Context, userID string, contactID string) ([]schema.AiMessage, error)
	// ListConversationContactIDs lists the distinct contacts a user has messages with
	ListConversationContactIDs(ctx context.Context, userID string) ([]string, error)
	// GetLatestAiMessage returns the newest message of a conversation with the contact joined
	GetLatestAiMessage(ctx context.Context, userID string, contactID string) (*schema.AiMessage, error)
	// DeleteAiMessagesByUser deletes every message of a user and returns the number removed
	DeleteAiMessagesByUser(ctx context.Context, userID string) (int64, error)
	// UpdateAiMessageDelivery records the delivery state of a USER message
	// Moving to queued is refused with domain.ErrNotFound once delivery has started
	UpdateAiMessageDelivery(ctx context.Context, id string, update ReplyDeliveryUpdate) error
	// ListRedeliverableReplies lists USER messages whose delivery never started or whose enqueue failed
	ListRedeliverableReplies(ctx context.Context, queuedBefore time.Time, limit int) ([]schema.AiMessage, error)

	// =============================================================================
	// Reply deliveries
	// =============================================================================

	CreateReplyDelivery(ctx context.Context, delivery *schema.ReplyDelivery) error
	UpdateReplyDeliveryStatus(ctx context.Context, deliveryID uint64, status schema.ReplyDeliveryStatus, attempts int, responseStatus *int, responseBody, errorMessage string) error
	GetReplyDeliveriesByMessage(ctx context.Context, messageID string) ([]schema.ReplyDelivery, error)
}
