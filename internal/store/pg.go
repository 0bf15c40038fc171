package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

// pgForeignKeyViolation is the PostgreSQL SQLSTATE for foreign_key_violation
const pgForeignKeyViolation = "23503"

// maxDeliveryErrorLength bounds error text stored on delivery rows
const maxDeliveryErrorLength = 1024

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Ping checks database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// =============================================================================
// Query helpers
// =============================================================================

// scopeToOwner restricts a read query to rows created by the caller unless the caller is ADMIN
func scopeToOwner(query *gorm.DB, caller domain.Caller, ownerColumn string) *gorm.DB {
	if caller.IsAdmin() {
		return query
	}
	return query.Where(clause.Eq{Column: clause.Column{Name: ownerColumn}, Value: caller.ID})
}

// ownedBy restricts a mutation to the row with the given id created by ownerID
func ownedBy(query *gorm.DB, ownerID, id string) *gorm.DB {
	return query.Where("id = ?", id).Where(clause.Eq{Column: clause.Column{Name: "created_by"}, Value: ownerID})
}

// paginate counts the rows matched by query and returns the requested page.
// decorate adds selects and preloads that must not affect the count.
func paginate[T any](query *gorm.DB, opts ListOptions, decorate func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rows: %w", err)
	}

	rows := make([]T, 0)
	if total == 0 || opts.Offset() >= total {
		return rows, total, nil
	}

	page := query
	if decorate != nil {
		page = decorate(page)
	}
	err := page.
		Order(clause.OrderByColumn{Column: clause.Column{Name: opts.SortColumn}, Desc: opts.Order != OrderAsc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: opts.Order != OrderAsc}).
		Limit(opts.Limit).
		Offset(int(opts.Offset())).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rows: %w", err)
	}

	return rows, total, nil
}

// first runs query.First and maps a missing row to nil
func first[T any](query *gorm.DB) (*T, error) {
	var row T
	err := query.First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// updateOwned applies updates to the row owned by ownerID in a single statement and returns the updated row
func updateOwned[T any](ctx context.Context, db *gorm.DB, ownerID, id string, updates map[string]interface{}) (*T, error) {
	var row T
	result := ownedBy(db.WithContext(ctx).Model(&row).Clauses(clause.Returning{}), ownerID, id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

// deleteOwned deletes the row owned by ownerID in a single statement
func deleteOwned[T any](ctx context.Context, db *gorm.DB, ownerID, id string) error {
	var row T
	result := ownedBy(db.WithContext(ctx), ownerID, id).Delete(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}

func truncate(value string, limit int) string {
	if len(value) > limit {
		return value[:limit]
	}
	return value
}

// =============================================================================
// Users
// =============================================================================

// GetUserByID retrieves a user by ID
func (s *pgStore) GetUserByID(ctx context.Context, id string) (*schema.User, error) {
	user, err := first[schema.User](s.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// =============================================================================
// Contacts
// =============================================================================

// ListContacts lists contacts visible to the caller
func (s *pgStore) ListContacts(ctx context.Context, caller domain.Caller, filter ContactFilter, opts ListOptions) ([]schema.Contact, int64, error) {
	query := scopeToOwner(s.db.WithContext(ctx).Model(&schema.Contact{}), caller, "created_by")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.PipelineStage != nil {
		query = query.Where("pipeline_stage = ?", *filter.PipelineStage)
	}
	if filter.Tag != nil {
		tag, err := json.Marshal([]string{*filter.Tag})
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode tag filter: %w", err)
		}
		query = query.Where("tags @> ?::jsonb", string(tag))
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		pattern := "%" + escapeLike(strings.TrimSpace(*filter.Search)) + "%"
		query = query.Where("(name ILIKE ? OR email ILIKE ? OR phone_number ILIKE ?)", pattern, pattern, pattern)
	}

	contacts, total, err := paginate[schema.Contact](query, opts, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, total, nil
}

// GetContact retrieves a contact visible to the caller
func (s *pgStore) GetContact(ctx context.Context, caller domain.Caller, id string) (*schema.Contact, error) {
	query := scopeToOwner(s.db.WithContext(ctx).Where("id = ?", id), caller, "created_by")
	contact, err := first[schema.Contact](query)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// GetContactOwnedBy retrieves a contact created by ownerID
func (s *pgStore) GetContactOwnedBy(ctx context.Context, ownerID string, id string) (*schema.Contact, error) {
	contact, err := first[schema.Contact](ownedBy(s.db.WithContext(ctx), ownerID, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// ContactExists reports whether a contact exists
func (s *pgStore) ContactExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Contact{}).Where("id = ?", id).Limit(1).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check contact: %w", err)
	}
	return count > 0, nil
}

// CreateContact inserts a contact
func (s *pgStore) CreateContact(ctx context.Context, contact *schema.Contact) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// UpdateContact updates a contact owned by ownerID
func (s *pgStore) UpdateContact(ctx context.Context, ownerID string, id string, updates map[string]interface{}) (*schema.Contact, error) {
	contact, err := updateOwned[schema.Contact](ctx, s.db, ownerID, id, updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

// DeleteContact deletes a contact owned by ownerID
func (s *pgStore) DeleteContact(ctx context.Context, ownerID string, id string) error {
	err := deleteOwned[schema.Contact](ctx, s.db, ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// AddContactTags merges tags into a contact's tag set
func (s *pgStore) AddContactTags(ctx context.Context, ownerID string, id string, tags []string) (*schema.Contact, error) {
	return s.mutateContactTags(ctx, ownerID, id, func(existing []string) []string {
		return domain.MergeTags(existing, tags)
	})
}

// RemoveContactTags removes tags from a contact's tag set
func (s *pgStore) RemoveContactTags(ctx context.Context, ownerID string, id string, tags []string) (*schema.Contact, error) {
	return s.mutateContactTags(ctx, ownerID, id, func(existing []string) []string {
		return domain.RemoveTags(existing, tags)
	})
}

// mutateContactTags rewrites the tag set while holding a row lock on the contact
func (s *pgStore) mutateContactTags(ctx context.Context, ownerID string, id string, mutate func([]string) []string) (*schema.Contact, error) {
	var contact schema.Contact
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := ownedBy(tx.Clauses(clause.Locking{Strength: "UPDATE"}), ownerID, id).First(&contact).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		tags := datatypes.JSONSlice[string](mutate(contact.Tags))
		return tx.Model(&contact).Clauses(clause.Returning{}).Update("tags", tags).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update contact tags: %w", err)
	}
	return &contact, nil
}

// FindContactWithPinByPhone finds the newest visible contact with the phone number and a PIN set
func (s *pgStore) FindContactWithPinByPhone(ctx context.Context, caller domain.Caller, phoneNumber string) (*schema.Contact, error) {
	query := scopeToOwner(s.db.WithContext(ctx), caller, "created_by").
		Where("phone_number = ?", phoneNumber).
		Where("pin IS NOT NULL AND pin <> ''").
		Order("created_at DESC")
	contact, err := first[schema.Contact](query)
	if err != nil {
		return nil, fmt.Errorf("failed to find contact by phone: %w", err)
	}
	return contact, nil
}

// =============================================================================
// Investment calculations
// =============================================================================

func preloadOwnerAndContact(query *gorm.DB) *gorm.DB {
	return query.Preload("Contact").Preload("User")
}

// ListCalculations lists investment calculations visible to the caller
func (s *pgStore) ListCalculations(ctx context.Context, caller domain.Caller, filter CalculationFilter, opts ListOptions) ([]schema.InvestmentCalculation, int64, error) {
	query := scopeToOwner(s.db.WithContext(ctx).Model(&schema.InvestmentCalculation{}), caller, "created_by")

	if filter.ContactID != nil {
		query = query.Where("contact_id = ?", *filter.ContactID)
	}
	if filter.PropertyType != nil {
		query = query.Where("property_type = ?", *filter.PropertyType)
	}
	if filter.MarketArea != nil {
		query = query.Where("market_area = ?", *filter.MarketArea)
	}

	calculations, total, err := paginate[schema.InvestmentCalculation](query, opts, preloadOwnerAndContact)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list investment calculations: %w", err)
	}
	return calculations, total, nil
}

// GetCalculation retrieves an investment calculation visible to the caller
func (s *pgStore) GetCalculation(ctx context.Context, caller domain.Caller, id string) (*schema.InvestmentCalculation, error) {
	query := scopeToOwner(s.db.WithContext(ctx).Where("id = ?", id), caller, "created_by")
	calculation, err := first[schema.InvestmentCalculation](preloadOwnerAndContact(query))
	if err != nil {
		return nil, fmt.Errorf("failed to get investment calculation: %w", err)
	}
	return calculation, nil
}

// CreateCalculation inserts an investment calculation and loads its contact summary
func (s *pgStore) CreateCalculation(ctx context.Context, calculation *schema.InvestmentCalculation) error {
	db := s.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(calculation).Error; err != nil {
		return fmt.Errorf("failed to create investment calculation: %w", err)
	}

	var contact schema.ContactSummary
	if err := db.Where("id = ?", calculation.ContactID).First(&contact).Error; err != nil {
		return fmt.Errorf("failed to load calculation contact: %w", err)
	}
	calculation.Contact = &contact
	return nil
}

// UpdateCalculation updates an investment calculation owned by ownerID
func (s *pgStore) UpdateCalculation(ctx context.Context, ownerID string, id string, updates map[string]interface{}) (*schema.InvestmentCalculation, error) {
	calculation, err := updateOwned[schema.InvestmentCalculation](ctx, s.db, ownerID, id, updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update investment calculation: %w", err)
	}
	return calculation, nil
}

// DeleteCalculation deletes an investment calculation owned by ownerID
func (s *pgStore) DeleteCalculation(ctx context.Context, ownerID string, id string) error {
	err := deleteOwned[schema.InvestmentCalculation](ctx, s.db, ownerID, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to delete investment calculation: %w", err)
	}
	return err
}

// ListCalculationsByContact lists the calculations of one contact
func (s *pgStore) ListCalculationsByContact(ctx context.Context, caller domain.Caller, contactID string) ([]schema.InvestmentCalculation, error) {
	calculations := make([]schema.InvestmentCalculation, 0)
	err := scopeToOwner(s.db.WithContext(ctx), caller, "created_by").
		Where("contact_id = ?", contactID).
		Preload("User").
		Order("created_at DESC").
		Find(&calculations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations by contact: %w", err)
	}
	return calculations, nil
}

// =============================================================================
// Investor questionnaires
// =============================================================================

// ListQuestionnaires lists investor questionnaires visible to the caller
func (s *pgStore) ListQuestionnaires(ctx context.Context, caller domain.Caller, filter QuestionnaireFilter, opts ListOptions) ([]schema.InvestorQuestionnaire, int64, error) {
	query := scopeToOwner(s.db.WithContext(ctx).Model(&schema.InvestorQuestionnaire{}), caller, "created_by")

	if filter.ContactID != nil {
		query = query.Where("contact_id = ?", *filter.ContactID)
	}
	if filter.IsAccreditedInvestor != nil {
		query = query.Where("is_accredited_investor = ?", *filter.IsAccreditedInvestor)
	}

	questionnaires, total, err := paginate[schema.InvestorQuestionnaire](query, opts, preloadOwnerAndContact)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list investor questionnaires: %w", err)
	}
	return questionnaires, total, nil
}

// GetQuestionnaire retrieves an investor questionnaire visible to the caller
func (s *pgStore) GetQuestionnaire(ctx context.Context, caller domain.Caller, id string) (*schema.InvestorQuestionnaire, error) {
	query := scopeToOwner(s.db.WithContext(ctx).Where("id = ?", id), caller, "created_by")
	questionnaire, err := first[schema.InvestorQuestionnaire](preloadOwnerAndContact(query))
	if err != nil {
		return nil, fmt.Errorf("failed to get investor questionnaire: %w", err)
	}
	return questionnaire, nil
}

// CreateQuestionnaire inserts an investor questionnaire
func (s *pgStore) CreateQuestionnaire(ctx context.Context, questionnaire *schema.InvestorQuestionnaire) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(questionnaire).Error; err != nil {
		return fmt.Errorf("failed to create investor questionnaire: %w", err)
	}
	return nil
}

// UpdateQuestionnaire updates an investor questionnaire owned by ownerID
func (s *pgStore) UpdateQuestionnaire(ctx context.Context, ownerID string, id string, updates map[string]interface{}) (*schema.InvestorQuestionnaire, error) {
	questionnaire, err := updateOwned[schema.InvestorQuestionnaire](ctx, s.db, ownerID, id, updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update investor questionnaire: %w", err)
	}
	return questionnaire, nil
}

// DeleteQuestionnaire deletes an investor questionnaire owned by ownerID
func (s *pgStore) DeleteQuestionnaire(ctx context.Context, ownerID string, id string) error {
	err := deleteOwned[schema.InvestorQuestionnaire](ctx, s.db, ownerID, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to delete investor questionnaire: %w", err)
	}
	return err
}

// ListQuestionnairesByContact lists the questionnaires of one contact
func (s *pgStore) ListQuestionnairesByContact(ctx context.Context, caller domain.Caller, contactID string) ([]schema.InvestorQuestionnaire, error) {
	questionnaires := make([]schema.InvestorQuestionnaire, 0)
	err := scopeToOwner(s.db.WithContext(ctx), caller, "created_by").
		Where("contact_id = ?", contactID).
		Preload("User").
		Order("created_at DESC").
		Find(&questionnaires).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list questionnaires by contact: %w", err)
	}
	return questionnaires, nil
}

// =============================================================================
// Videos
// =============================================================================

func withFeedbackCount(query *gorm.DB) *gorm.DB {
	return query.
		Select("videos.*, (SELECT COUNT(*) FROM video_feedbacks WHERE video_feedbacks.video_id = videos.id) AS feedback_count").
		Preload("User")
}

// ListVideos lists videos visible to the caller with their feedback counts
func (s *pgStore) ListVideos(ctx context.Context, caller domain.Caller, filter VideoFilter, opts ListOptions) ([]schema.Video, int64, error) {
	query := scopeToOwner(s.db.WithContext(ctx).Model(&schema.Video{}), caller, "created_by")

	if filter.IsPublished != nil {
		query = query.Where("is_published = ?", *filter.IsPublished)
	}

	videos, total, err := paginate[schema.Video](query, opts, withFeedbackCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, total, nil
}

// GetVideo retrieves a video visible to the caller
func (s *pgStore) GetVideo(ctx context.Context, caller domain.Caller, id string) (*schema.Video, error) {
	query := scopeToOwner(s.db.WithContext(ctx).Model(&schema.Video{}).Where("id = ?", id), caller, "created_by")
	video, err := first[schema.Video](withFeedbackCount(query))
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return video, nil
}

// VideoExists reports whether a video exists
func (s *pgStore) VideoExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Video{}).Where("id = ?", id).Limit(1).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check video: %w", err)
	}
	return count > 0, nil
}

// CreateVideo inserts a video
func (s *pgStore) CreateVideo(ctx context.Context, video *schema.Video) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(video).Error; err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// UpdateVideo updates a video owned by ownerID
func (s *pgStore) UpdateVideo(ctx context.Context, ownerID string, id string, updates map[string]interface{}) (*schema.Video, error) {
	video, err := updateOwned[schema.Video](ctx, s.db, ownerID, id, updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return video, nil
}

// DeleteVideo deletes a video owned by ownerID unless feedback references it
func (s *pgStore) DeleteVideo(ctx context.Context, ownerID string, id string) error {
	db := s.db.WithContext(ctx)
	result := ownedBy(db, ownerID, id).
		Where("NOT EXISTS (SELECT 1 FROM video_feedbacks WHERE video_feedbacks.video_id = videos.id)").
		Delete(&schema.Video{})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("failed to delete video: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := ownedBy(db.Model(&schema.Video{}), ownerID, id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check video: %w", err)
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrReferenced
}

// ToggleVideoPublished flips is_published on a video owned by ownerID
func (s *pgStore) ToggleVideoPublished(ctx context.Context, ownerID string, id string) (*schema.Video, error) {
	var video schema.Video
	result := ownedBy(s.db.WithContext(ctx).Model(&video).Clauses(clause.Returning{}), ownerID, id).
		Update("is_published", gorm.Expr("NOT is_published"))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to toggle video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return &video, nil
}

// =============================================================================
// Video feedback
// =============================================================================

func preloadVideoAndContact(query *gorm.DB) *gorm.DB {
	return query.Preload("Video").Preload("Contact")
}

// ListFeedbacks lists video feedback
func (s *pgStore) ListFeedbacks(ctx context.Context, filter FeedbackFilter, opts ListOptions) ([]schema.VideoFeedback, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.VideoFeedback{})

	if filter.VideoID != nil {
		query = query.Where("video_id = ?", *filter.VideoID)
	}
	if filter.ContactID != nil {
		query = query.Where("contact_id = ?", *filter.ContactID)
	}

	feedbacks, total, err := paginate[schema.VideoFeedback](query, opts, preloadVideoAndContact)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list video feedback: %w", err)
	}
	return feedbacks, total, nil
}

// GetFeedback retrieves video feedback by ID
func (s *pgStore) GetFeedback(ctx context.Context, id string) (*schema.VideoFeedback, error) {
	feedback, err := first[schema.VideoFeedback](preloadVideoAndContact(s.db.WithContext(ctx).Where("id = ?", id)))
	if err != nil {
		return nil, fmt.Errorf("failed to get video feedback: %w", err)
	}
	return feedback, nil
}

// CreateFeedback inserts video feedback
func (s *pgStore) CreateFeedback(ctx context.Context, feedback *schema.VideoFeedback) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(feedback).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to create video feedback: %w", err)
	}
	return nil
}

// UpdateFeedback updates video feedback
func (s *pgStore) UpdateFeedback(ctx context.Context, id string, updates map[string]interface{}) (*schema.VideoFeedback, error) {
	var feedback schema.VideoFeedback
	result := s.db.WithContext(ctx).Model(&feedback).Clauses(clause.Returning{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update video feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return &feedback, nil
}

// DeleteFeedback deletes video feedback
func (s *pgStore) DeleteFeedback(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.VideoFeedback{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete video feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListFeedbacksByVideo lists the feedback of one video, newest first
func (s *pgStore) ListFeedbacksByVideo(ctx context.Context, videoID string) ([]schema.VideoFeedback, error) {
	feedbacks := make([]schema.VideoFeedback, 0)
	err := s.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Preload("Contact").
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback by video: %w", err)
	}
	return feedbacks, nil
}

// ListFeedbacksByContact lists the feedback left by one contact, newest first
func (s *pgStore) ListFeedbacksByContact(ctx context.Context, contactID string) ([]schema.VideoFeedback, error) {
	feedbacks := make([]schema.VideoFeedback, 0)
	err := s.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Preload("Video").
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback by contact: %w", err)
	}
	return feedbacks, nil
}

// =============================================================================
// AI conversation
// =============================================================================

// CreateAiMessage inserts a conversation message
func (s *pgStore) CreateAiMessage(ctx context.Context, message *schema.AiMessage) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create ai message: %w", err)
	}
	return nil
}

// GetAiMessage retrieves a conversation message by ID
func (s *pgStore) GetAiMessage(ctx context.Context, id string) (*schema.AiMessage, error) {
	message, err := first[schema.AiMessage](s.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get ai message: %w", err)
	}
	return message, nil
}

// ListConversation lists the messages between a user and a contact, oldest first
func (s *pgStore) ListConversation(ctx context.Context, userID string, contactID string) ([]schema.AiMessage, error) {
	messages := make([]schema.AiMessage, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND contact_id = ?", userID, contactID).
		Preload("User").
		Preload("Contact").
		Order("created_at ASC").
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	return messages, nil
}

// ListConversationContactIDs lists the distinct contacts a user has messages with
func (s *pgStore) ListConversationContactIDs(ctx context.Context, userID string) ([]string, error) {
	contactIDs := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&schema.AiMessage{}).
		Where("user_id = ?", userID).
		Distinct("contact_id").
		Pluck("contact_id", &contactIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation contacts: %w", err)
	}
	return contactIDs, nil
}

// GetLatestAiMessage returns the newest message of a conversation
func (s *pgStore) GetLatestAiMessage(ctx context.Context, userID string, contactID string) (*schema.AiMessage, error) {
	query := s.db.WithContext(ctx).
		Where("user_id = ? AND contact_id = ?", userID, contactID).
		Preload("Contact").
		Order("created_at DESC").
		Order("id DESC")
	message, err := first[schema.AiMessage](query)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest ai message: %w", err)
	}
	return message, nil
}

// DeleteAiMessagesByUser deletes every message of a user
func (s *pgStore) DeleteAiMessagesByUser(ctx context.Context, userID string) (int64, error) {
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&schema.AiMessage{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete ai messages: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// UpdateAiMessageDelivery records the delivery state of a USER message
func (s *pgStore) UpdateAiMessageDelivery(ctx context.Context, id string, update ReplyDeliveryUpdate) error {
	updates := map[string]interface{}{
		"delivery_status": update.Status,
	}
	if update.Attempts != nil {
		updates["delivery_attempts"] = *update.Attempts
	}
	if update.Error != nil {
		updates["delivery_error"] = truncate(*update.Error, maxDeliveryErrorLength)
	}
	if update.WorkflowID != nil {
		updates["delivery_workflow_id"] = *update.WorkflowID
	}
	if update.DeliveredAt != nil {
		updates["delivered_at"] = *update.DeliveredAt
	}

	query := s.db.WithContext(ctx).
		Model(&schema.AiMessage{}).
		Where("id = ? AND sender_type = ?", id, domain.SenderTypeUser)
	if update.Status == domain.DeliveryStatusQueued {
		// A worker may already have picked the message up, never move it back to queued
		query = query.Where("delivery_status NOT IN ?", []domain.DeliveryStatus{domain.DeliveryStatusDelivering, domain.DeliveryStatusDelivered})
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update ai message delivery: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRedeliverableReplies lists USER messages whose enqueue failed or that sat queued since before queuedBefore
func (s *pgStore) ListRedeliverableReplies(ctx context.Context, queuedBefore time.Time, limit int) ([]schema.AiMessage, error) {
	messages := make([]schema.AiMessage, 0)
	err := s.db.WithContext(ctx).
		Where("sender_type = ?", domain.SenderTypeUser).
		Where(
			"(delivery_status = ? AND delivery_attempts = 0) OR (delivery_status = ? AND created_at < ?)",
			domain.DeliveryStatusFailed, domain.DeliveryStatusQueued, queuedBefore,
		).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list redeliverable replies: %w", err)
	}
	return messages, nil
}

// =============================================================================
// Reply deliveries
// =============================================================================

// CreateReplyDelivery creates a new reply delivery record
func (s *pgStore) CreateReplyDelivery(ctx context.Context, delivery *schema.ReplyDelivery) error {
	if err := s.db.WithContext(ctx).Create(delivery).Error; err != nil {
		return fmt.Errorf("failed to create reply delivery: %w", err)
	}
	return nil
}

// UpdateReplyDeliveryStatus updates the status and result of a reply delivery
func (s *pgStore) UpdateReplyDeliveryStatus(ctx context.Context, deliveryID uint64, status schema.ReplyDeliveryStatus, attempts int, responseStatus *int, responseBody, errorMessage string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":          status,
		"attempts":        attempts,
		"response_body":   responseBody,
		"last_attempt_at": now,
		"updated_at":      now,
	}

	if responseStatus != nil {
		updates["response_status"] = *responseStatus
	}
	if errorMessage != "" {
		updates["error_message"] = truncate(errorMessage, maxDeliveryErrorLength)
	}

	err := s.db.WithContext(ctx).
		Model(&schema.ReplyDelivery{}).
		Where("id = ?", deliveryID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update reply delivery status: %w", err)
	}

	return nil
}

// GetReplyDeliveriesByMessage lists the delivery records of a message, oldest first
func (s *pgStore) GetReplyDeliveriesByMessage(ctx context.Context, messageID string) ([]schema.ReplyDelivery, error) {
	deliveries := make([]schema.ReplyDelivery, 0)
	err := s.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("id ASC").
		Find(&deliveries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reply deliveries: %w", err)
	}
	return deliveries, nil
}
