package executor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/adapter"
	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/realtime"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
	"github.com/feral-file/realty-crm/internal/workflows"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Ping checks that the database is reachable
	Ping(ctx context.Context) error

	// =============================================================================
	// Contacts
	// =============================================================================

	ListContacts(ctx context.Context, caller domain.Caller, query dto.ContactListQuery) (*dto.ListResponse[schema.Contact], error)
	GetContact(ctx context.Context, caller domain.Caller, id string) (*schema.Contact, error)
	CreateContact(ctx context.Context, caller domain.Caller, body []byte) (*schema.Contact, error)
	UpdateContact(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.Contact, error)
	DeleteContact(ctx context.Context, caller domain.Caller, id string) error
	AddContactTags(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.Contact, error)
	RemoveContactTags(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.Contact, error)
	UpdatePipelineStage(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.Contact, error)
	LookupPin(ctx context.Context, caller domain.Caller, body []byte) (*dto.ContactPin, error)
	ListContactCalculations(ctx context.Context, caller domain.Caller, contactID string) ([]schema.InvestmentCalculation, error)
	ListContactQuestionnaires(ctx context.Context, caller domain.Caller, contactID string) ([]schema.InvestorQuestionnaire, error)
	ListContactFeedbacks(ctx context.Context, caller domain.Caller, contactID string) ([]schema.VideoFeedback, error)

	// =============================================================================
	// Investment calculations
	// =============================================================================

	ListCalculations(ctx context.Context, caller domain.Caller, query dto.CalculationListQuery) (*dto.ListResponse[schema.InvestmentCalculation], error)
	GetCalculation(ctx context.Context, caller domain.Caller, id string) (*schema.InvestmentCalculation, error)
	CreateCalculation(ctx context.Context, caller domain.Caller, body []byte) (*schema.InvestmentCalculation, error)
	UpdateCalculation(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.InvestmentCalculation, error)
	DeleteCalculation(ctx context.Context, caller domain.Caller, id string) error

	// =============================================================================
	// Investor questionnaires
	// =============================================================================

	ListQuestionnaires(ctx context.Context, caller domain.Caller, query dto.QuestionnaireListQuery) (*dto.ListResponse[schema.InvestorQuestionnaire], error)
	GetQuestionnaire(ctx context.Context, caller domain.Caller, id string) (*schema.InvestorQuestionnaire, error)
	CreateQuestionnaire(ctx context.Context, caller domain.Caller, body []byte) (*schema.InvestorQuestionnaire, error)
	UpdateQuestionnaire(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.InvestorQuestionnaire, error)
	DeleteQuestionnaire(ctx context.Context, caller domain.Caller, id string) error

	// =============================================================================
	// Videos
	// =============================================================================

	ListVideos(ctx context.Context, caller domain.Caller, query dto.VideoListQuery) (*dto.ListResponse[schema.Video], error)
	GetVideo(ctx context.Context, caller domain.Caller, id string) (*schema.Video, error)
	CreateVideo(ctx context.Context, caller domain.Caller, body []byte) (*schema.Video, error)
	UpdateVideo(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.Video, error)
	DeleteVideo(ctx context.Context, caller domain.Caller, id string) error
	ToggleVideoPublished(ctx context.Context, caller domain.Caller, id string) (*schema.Video, error)

	// =============================================================================
	// Video feedback
	// =============================================================================

	ListFeedbacks(ctx context.Context, query dto.FeedbackListQuery) (*dto.ListResponse[schema.VideoFeedback], error)
	GetFeedback(ctx context.Context, id string) (*schema.VideoFeedback, error)
	CreateFeedback(ctx context.Context, body []byte) (*schema.VideoFeedback, error)
	UpdateFeedback(ctx context.Context, id string, body []byte) (*schema.VideoFeedback, error)
	DeleteFeedback(ctx context.Context, id string) error
	ListVideoFeedbacks(ctx context.Context, videoID string) ([]schema.VideoFeedback, error)
	ListFeedbacksForContact(ctx context.Context, contactID string) ([]schema.VideoFeedback, error)

	// =============================================================================
	// AI conversation
	// =============================================================================

	// HandleInboundMessage stores an AI message posted by the automation platform.
	// It never fails: every outcome is an acknowledgement for the caller.
	HandleInboundMessage(ctx context.Context, body []byte) *dto.WebhookAck
	// HandleUserReply stores a user message and hands it to the delivery queue
	HandleUserReply(ctx context.Context, caller domain.Caller, body []byte) (*dto.ReplyResponse, error)
	ListConversations(ctx context.Context, caller domain.Caller) ([]dto.ConversationSummary, error)
	GetConversation(ctx context.Context, caller domain.Caller, contactID string) ([]schema.AiMessage, error)
	ClearConversationHistory(ctx context.Context, caller domain.Caller) (int64, error)
}

// Config holds the executor settings taken from the API configuration
type Config struct {
	DefaultLimit        int
	MaxLimit            int
	ReplyWebhookURL     string
	ConversationWorkers int
}

type executor struct {
	store       store.Store
	replyQueue  workflows.ReplyQueue
	broadcaster realtime.Broadcaster
	clock       adapter.Clock
	config      Config
	pool        pond.ResultPool[*dto.ConversationSummary]
}

func NewExecutor(st store.Store, replyQueue workflows.ReplyQueue, broadcaster realtime.Broadcaster, clock adapter.Clock, cfg Config) Executor {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = domain.DEFAULT_PAGE_LIMIT
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = domain.MAX_PAGE_LIMIT
	}
	if cfg.ConversationWorkers <= 0 {
		cfg.ConversationWorkers = 8
	}

	return &executor{
		store:       st,
		replyQueue:  replyQueue,
		broadcaster: broadcaster,
		clock:       clock,
		config:      cfg,
		pool:        pond.NewResultPool[*dto.ConversationSummary](cfg.ConversationWorkers),
	}
}

func (e *executor) Ping(ctx context.Context) error {
	return e.store.Ping(ctx)
}

// listOptions validates the paging and sorting parameters against the entity's sortable fields
func (e *executor) listOptions(query dto.ListQuery, sortable store.SortableFields) (store.ListOptions, error) {
	page := query.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return store.ListOptions{}, apierrors.NewValidationError("page must be greater than or equal to 1")
	}

	limit := e.config.DefaultLimit
	if query.Limit != nil {
		limit = *query.Limit
	}
	if limit < 1 || limit > e.config.MaxLimit {
		return store.ListOptions{}, apierrors.NewValidationError(fmt.Sprintf("limit must be between 1 and %d", e.config.MaxLimit))
	}
	// the row offset must fit in a signed 64-bit integer
	if int64(page-1) > math.MaxInt64/int64(limit) {
		return store.ListOptions{}, apierrors.NewValidationError("page is too large")
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	column, ok := sortable.Resolve(sortBy)
	if !ok {
		return store.ListOptions{}, apierrors.NewValidationError(fmt.Sprintf("sortBy must be one of: %s", strings.Join(sortableNames(sortable), ", ")))
	}

	order := store.OrderDesc
	if query.Order != "" {
		order = store.Order(strings.ToLower(query.Order))
	}
	if !order.Valid() {
		return store.ListOptions{}, apierrors.NewValidationError("order must be asc or desc")
	}

	return store.ListOptions{
		Page:       page,
		Limit:      limit,
		SortColumn: column,
		Order:      order,
	}, nil
}

func sortableNames(sortable store.SortableFields) []string {
	names := make([]string, 0, len(sortable))
	for name := range sortable {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// isValidID reports whether id can be a primary key, other values can never match a row
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// validIDFilter returns false when an id filter is set to a value that can never match
func validIDFilter(id *string) bool {
	return id == nil || isValidID(*id)
}

// boolFilter maps a query flag to a filter: "true" is true, any other value is false
func boolFilter(value *string) *bool {
	if value == nil {
		return nil
	}
	b := *value == "true"
	return &b
}

// ensureOwnedContact checks that the contact exists and was created by the caller
func (e *executor) ensureOwnedContact(ctx context.Context, caller domain.Caller, contactID string) error {
	if !isValidID(contactID) {
		return apierrors.NewNotFoundError("Contact not found or access denied")
	}
	contact, err := e.store.GetContactOwnedBy(ctx, caller.ID, contactID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get contact: %v", err))
	}
	if contact == nil {
		return apierrors.NewNotFoundError("Contact not found or access denied")
	}
	return nil
}

// ensureVisibleContact checks that the contact exists and is visible to the caller
func (e *executor) ensureVisibleContact(ctx context.Context, caller domain.Caller, contactID string) error {
	if !isValidID(contactID) {
		return apierrors.NewNotFoundError("Contact not found or access denied")
	}
	contact, err := e.store.GetContact(ctx, caller, contactID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get contact: %v", err))
	}
	if contact == nil {
		return apierrors.NewNotFoundError("Contact not found or access denied")
	}
	return nil
}

// touch makes an update with no writable keys still bump updated_at
func (e *executor) touch(updates map[string]interface{}) map[string]interface{} {
	if len(updates) == 0 {
		updates["updated_at"] = e.clock.Now()
	}
	return updates
}

// mutationError maps a store mutation error to an API error
func mutationError(err error, action string, notFoundMessage string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apierrors.NewNotFoundError(notFoundMessage)
	default:
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to %s: %v", action, err))
	}
}

// broadcast pushes a message to the user's real-time group, failures are only logged
func (e *executor) broadcast(ctx context.Context, userID string, message *schema.AiMessage) {
	if e.broadcaster == nil {
		return
	}
	if err := e.broadcaster.Broadcast(ctx, userID, message); err != nil {
		logger.WarnCtx(ctx, "Failed to broadcast message",
			zap.String("userID", userID),
			zap.String("messageID", message.ID),
			zap.Error(err),
		)
	}
}
