package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// Seed users from db/pg_test_data.sql
const (
	aliceID = "11111111-1111-1111-1111-111111111111"
	bobID   = "22222222-2222-2222-2222-222222222222"
	adminID = "33333333-3333-3333-3333-333333333333"
)

var (
	alice = domain.Caller{ID: aliceID, Name: "Alice Agent", Role: domain.RoleUser}
	bob   = domain.Caller{ID: bobID, Name: "Bob Broker", Role: domain.RoleUser}
	admin = domain.Caller{ID: adminID, Name: "Ada Admin", Role: domain.RoleAdmin}
)

func defaultListOptions() ListOptions {
	return ListOptions{Page: 1, Limit: 10, SortColumn: "created_at", Order: OrderDesc}
}

// =============================================================================
// Test Data Builders
// =============================================================================

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

// buildTestContact creates a contact owned by ownerID
func buildTestContact(ownerID, name string) *schema.Contact {
	return &schema.Contact{
		Name:        name,
		PhoneNumber: stringPtr("+1-555-0100"),
		Email:       stringPtr(fmt.Sprintf("%s@example.com", name)),
		CreatedBy:   ownerID,
	}
}

// buildTestCalculation creates an investment calculation for a contact
func buildTestCalculation(ownerID, contactID string, amount float64) *schema.InvestmentCalculation {
	return &schema.InvestmentCalculation{
		PropertyType:          "multifamily",
		MarketArea:            "Austin",
		InvestmentAmount:      amount,
		HoldPeriod:            5,
		AnnualReturnRate:      8.5,
		PropertyManagementFee: 10,
		VacancyRate:           5,
		MonthlyCashFlow:       1200,
		AnnualCashFlow:        14400,
		TotalReturn:           72000,
		ROI:                   14.4,
		ContactID:             contactID,
		CreatedBy:             ownerID,
	}
}

// buildTestQuestionnaire creates an investor questionnaire for a contact
func buildTestQuestionnaire(ownerID, contactID string, accredited bool) *schema.InvestorQuestionnaire {
	return &schema.InvestorQuestionnaire{
		IsAccreditedInvestor:    accredited,
		HasInvestedBefore:       true,
		LookingTimeframe:        "3-6 months",
		PrimaryInvestmentGoal:   "cash flow",
		InvestmentTimeline:      "short",
		CapitalToInvest:         "100k-250k",
		UseFinancing:            "yes",
		MarketsInterested:       datatypes.JSONSlice[string]{"Austin", "Dallas"},
		PropertyTypesInterested: datatypes.JSONSlice[string]{"multifamily"},
		InvestmentTimeframe:     "5 years",
		ContactID:               contactID,
		CreatedBy:               ownerID,
	}
}

// buildTestVideo creates a published video owned by ownerID
func buildTestVideo(ownerID, title string) *schema.Video {
	return &schema.Video{
		Title:       title,
		VideoURL:    "https://videos.example.com/" + title,
		IsPublished: true,
		CreatedBy:   ownerID,
	}
}

// buildTestMessage creates a conversation message at the given time
func buildTestMessage(userID, contactID string, sender domain.SenderType, text string, at time.Time) *schema.AiMessage {
	return &schema.AiMessage{
		Message:    text,
		SenderType: sender,
		UserID:     userID,
		ContactID:  contactID,
		CreatedAt:  at,
	}
}

func createContact(t *testing.T, store Store, ownerID, name string) *schema.Contact {
	t.Helper()
	contact := buildTestContact(ownerID, name)
	require.NoError(t, store.CreateContact(context.Background(), contact))
	return contact
}

// =============================================================================
// Contacts
// =============================================================================

func testCreateContact(t *testing.T, store Store) {
	ctx := context.Background()

	contact := buildTestContact(aliceID, "jane")
	err := store.CreateContact(ctx, contact)
	require.NoError(t, err)

	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, domain.ContactStatusLead, contact.Status)
	assert.NotNil(t, contact.Tags)
	assert.Empty(t, contact.Tags)

	got, err := store.GetContact(ctx, alice, contact.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "jane", got.Name)
	assert.Equal(t, aliceID, got.CreatedBy)
}

func testContactOwnership(t *testing.T, store Store) {
	ctx := context.Background()
	contact := createContact(t, store, aliceID, "owned")

	t.Run("non-owner get returns nil", func(t *testing.T) {
		got, err := store.GetContact(ctx, bob, contact.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("admin get sees every contact", func(t *testing.T) {
		got, err := store.GetContact(ctx, admin, contact.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, contact.ID, got.ID)
	})

	t.Run("non-owner update is not found", func(t *testing.T) {
		_, err := store.UpdateContact(ctx, bobID, contact.ID, map[string]interface{}{"name": "hijacked"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("admin update is restricted to own rows", func(t *testing.T) {
		_, err := store.UpdateContact(ctx, adminID, contact.ID, map[string]interface{}{"name": "hijacked"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing id update is not found", func(t *testing.T) {
		_, err := store.UpdateContact(ctx, aliceID, "99999999-9999-9999-9999-999999999999", map[string]interface{}{"name": "ghost"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner update returns the updated row", func(t *testing.T) {
		updated, err := store.UpdateContact(ctx, aliceID, contact.ID, map[string]interface{}{
			"name":           "renamed",
			"pipeline_stage": "negotiation",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, contact.ID, updated.ID)
		assert.Equal(t, "renamed", updated.Name)
		require.NotNil(t, updated.PipelineStage)
		assert.Equal(t, "negotiation", *updated.PipelineStage)
		assert.Equal(t, aliceID, updated.CreatedBy)
	})

	t.Run("non-owner delete is not found and keeps the row", func(t *testing.T) {
		err := store.DeleteContact(ctx, bobID, contact.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		got, err := store.GetContact(ctx, alice, contact.ID)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("owner delete removes the row", func(t *testing.T) {
		err := store.DeleteContact(ctx, aliceID, contact.ID)
		require.NoError(t, err)

		got, err := store.GetContact(ctx, alice, contact.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		err = store.DeleteContact(ctx, aliceID, contact.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func testListContactsPagination(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour).UTC()

	for i := range 7 {
		contact := buildTestContact(aliceID, fmt.Sprintf("contact-%02d", i))
		contact.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.CreateContact(ctx, contact))
	}
	createContact(t, store, bobID, "bob-contact")

	t.Run("first page", func(t *testing.T) {
		opts := ListOptions{Page: 1, Limit: 3, SortColumn: "created_at", Order: OrderDesc}
		contacts, total, err := store.ListContacts(ctx, alice, ContactFilter{}, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
		require.Len(t, contacts, 3)
		assert.Equal(t, "contact-06", contacts[0].Name)
		assert.Equal(t, "contact-04", contacts[2].Name)
	})

	t.Run("last partial page", func(t *testing.T) {
		opts := ListOptions{Page: 3, Limit: 3, SortColumn: "created_at", Order: OrderDesc}
		contacts, total, err := store.ListContacts(ctx, alice, ContactFilter{}, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
		require.Len(t, contacts, 1)
		assert.Equal(t, "contact-00", contacts[0].Name)
	})

	t.Run("page past the end is empty with unchanged total", func(t *testing.T) {
		opts := ListOptions{Page: 4, Limit: 3, SortColumn: "created_at", Order: OrderDesc}
		contacts, total, err := store.ListContacts(ctx, alice, ContactFilter{}, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.NotNil(t, contacts)
		assert.Empty(t, contacts)
	})

	t.Run("far page is empty with unchanged total", func(t *testing.T) {
		opts := ListOptions{Page: 1 << 40, Limit: 200, SortColumn: "created_at", Order: OrderDesc}
		contacts, total, err := store.ListContacts(ctx, alice, ContactFilter{}, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.Empty(t, contacts)
	})

	t.Run("ascending by name", func(t *testing.T) {
		opts := ListOptions{Page: 1, Limit: 2, SortColumn: "name", Order: OrderAsc}
		contacts, _, err := store.ListContacts(ctx, alice, ContactFilter{}, opts)
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, "contact-00", contacts[0].Name)
		assert.Equal(t, "contact-01", contacts[1].Name)
	})

	t.Run("admin sees every owner", func(t *testing.T) {
		_, total, err := store.ListContacts(ctx, admin, ContactFilter{}, defaultListOptions())
		require.NoError(t, err)
		assert.Equal(t, int64(8), total)
	})
}

func testListContactsFilters(t *testing.T, store Store) {
	ctx := context.Background()

	vip := buildTestContact(aliceID, "Vip Client")
	vip.Status = domain.ContactStatusClient
	vip.PipelineStage = stringPtr("closing")
	vip.Email = stringPtr("vip@corp.example")
	require.NoError(t, store.CreateContact(ctx, vip))
	_, err := store.AddContactTags(ctx, aliceID, vip.ID, []string{"vip", "investor"})
	require.NoError(t, err)

	createContact(t, store, aliceID, "plain lead")

	tests := []struct {
		name     string
		filter   ContactFilter
		expected []string
	}{
		{"status", ContactFilter{Status: stringPtr("client")}, []string{"Vip Client"}},
		{"pipeline stage", ContactFilter{PipelineStage: stringPtr("closing")}, []string{"Vip Client"}},
		{"tag contains", ContactFilter{Tag: stringPtr("investor")}, []string{"Vip Client"}},
		{"search is case-insensitive over email", ContactFilter{Search: stringPtr("CORP.EXAMPLE")}, []string{"Vip Client"}},
		{"search over name", ContactFilter{Search: stringPtr("plain")}, []string{"plain lead"}},
		{"search treats wildcards literally", ContactFilter{Search: stringPtr("%")}, []string{}},
		{"no match", ContactFilter{Status: stringPtr("former_client")}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts, total, err := store.ListContacts(ctx, alice, tt.filter, defaultListOptions())
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.expected)), total)
			names := make([]string, 0, len(contacts))
			for _, c := range contacts {
				names = append(names, c.Name)
			}
			assert.ElementsMatch(t, tt.expected, names)
		})
	}
}

func testContactTags(t *testing.T, store Store) {
	ctx := context.Background()
	contact := createContact(t, store, aliceID, "tagged")

	updated, err := store.AddContactTags(ctx, aliceID, contact.ID, []string{"hot", "buyer", "hot", " "})
	require.NoError(t, err)
	assert.Equal(t, []string{"hot", "buyer"}, []string(updated.Tags))

	// adding the same tags again is idempotent
	updated, err = store.AddContactTags(ctx, aliceID, contact.ID, []string{"buyer", "seller"})
	require.NoError(t, err)
	assert.Equal(t, []string{"hot", "buyer", "seller"}, []string(updated.Tags))

	// removing an absent tag is a no-op
	updated, err = store.RemoveContactTags(ctx, aliceID, contact.ID, []string{"absent"})
	require.NoError(t, err)
	assert.Equal(t, []string{"hot", "buyer", "seller"}, []string(updated.Tags))

	updated, err = store.RemoveContactTags(ctx, aliceID, contact.ID, []string{"buyer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"hot", "seller"}, []string(updated.Tags))

	got, err := store.GetContact(ctx, alice, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"hot", "seller"}, []string(got.Tags))

	_, err = store.AddContactTags(ctx, bobID, contact.ID, []string{"stolen"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testFindContactWithPinByPhone(t *testing.T, store Store) {
	ctx := context.Background()

	withPin := buildTestContact(aliceID, "with-pin")
	withPin.PhoneNumber = stringPtr("+1-555-0199")
	withPin.Pin = stringPtr("4321")
	require.NoError(t, store.CreateContact(ctx, withPin))

	noPin := buildTestContact(aliceID, "no-pin")
	noPin.PhoneNumber = stringPtr("+1-555-0188")
	require.NoError(t, store.CreateContact(ctx, noPin))

	got, err := store.FindContactWithPinByPhone(ctx, alice, "+1-555-0199")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, withPin.ID, got.ID)
	assert.Equal(t, "4321", *got.Pin)

	got, err = store.FindContactWithPinByPhone(ctx, alice, "+1-555-0188")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.FindContactWithPinByPhone(ctx, bob, "+1-555-0199")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.FindContactWithPinByPhone(ctx, admin, "+1-555-0199")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

// =============================================================================
// Investment calculations and questionnaires
// =============================================================================

func testCalculations(t *testing.T, store Store) {
	ctx := context.Background()
	contact := createContact(t, store, aliceID, "investor")
	other := createContact(t, store, aliceID, "other")

	calc := buildTestCalculation(aliceID, contact.ID, 250000)
	require.NoError(t, store.CreateCalculation(ctx, calc))
	assert.NotEmpty(t, calc.ID)
	require.NotNil(t, calc.Contact)
	assert.Equal(t, "investor", calc.Contact.Name)

	second := buildTestCalculation(aliceID, other.ID, 100000)
	second.PropertyType = "single_family"
	require.NoError(t, store.CreateCalculation(ctx, second))

	t.Run("list with joins", func(t *testing.T) {
		opts := ListOptions{Page: 1, Limit: 10, SortColumn: "investment_amount", Order: OrderDesc}
		calcs, total, err := store.ListCalculations(ctx, alice, CalculationFilter{}, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, calcs, 2)
		assert.Equal(t, calc.ID, calcs[0].ID)
		require.NotNil(t, calcs[0].Contact)
		assert.Equal(t, "investor", calcs[0].Contact.Name)
		require.NotNil(t, calcs[0].User)
		assert.Equal(t, "Alice Agent", calcs[0].User.Name)
	})

	t.Run("filters", func(t *testing.T) {
		calcs, total, err := store.ListCalculations(ctx, alice, CalculationFilter{PropertyType: stringPtr("single_family")}, defaultListOptions())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, second.ID, calcs[0].ID)

		calcs, _, err = store.ListCalculations(ctx, alice, CalculationFilter{ContactID: &contact.ID}, defaultListOptions())
		require.NoError(t, err)
		require.Len(t, calcs, 1)
		assert.Equal(t, calc.ID, calcs[0].ID)
	})

	t.Run("non-owner sees nothing", func(t *testing.T) {
		_, total, err := store.ListCalculations(ctx, bob, CalculationFilter{}, defaultListOptions())
		require.NoError(t, err)
		assert.Zero(t, total)

		got, err := store.GetCalculation(ctx, bob, calc.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update and delete", func(t *testing.T) {
		updated, err := store.UpdateCalculation(ctx, aliceID, calc.ID, map[string]interface{}{"roi": 20.5, "notes": "revised"})
		require.NoError(t, err)
		assert.Equal(t, 20.5, updated.ROI)
		assert.Equal(t, 250000.0, updated.InvestmentAmount)

		_, err = store.UpdateCalculation(ctx, bobID, calc.ID, map[string]interface{}{"roi": 1.0})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		assert.ErrorIs(t, store.DeleteCalculation(ctx, bobID, calc.ID), domain.ErrNotFound)
		require.NoError(t, store.DeleteCalculation(ctx, aliceID, calc.ID))
		assert.ErrorIs(t, store.DeleteCalculation(ctx, aliceID, calc.ID), domain.ErrNotFound)
	})

	t.Run("by contact", func(t *testing.T) {
		calcs, err := store.ListCalculationsByContact(ctx, alice, other.ID)
		require.NoError(t, err)
		require.Len(t, calcs, 1)
		assert.Equal(t, second.ID, calcs[0].ID)
	})
}

func testQuestionnaires(t *testing.T, store Store) {
	ctx := context.Background()
	contact := createContact(t, store, aliceID, "prospect")

	accredited := buildTestQuestionnaire(aliceID, contact.ID, true)
	require.NoError(t, store.CreateQuestionnaire(ctx, accredited))
	plain := buildTestQuestionnaire(aliceID, contact.ID, false)
	plain.MarketsInterested = nil
	require.NoError(t, store.CreateQuestionnaire(ctx, plain))
	assert.NotNil(t, plain.MarketsInterested)

	list, total, err := store.ListQuestionnaires(ctx, alice, QuestionnaireFilter{IsAccreditedInvestor: boolPtr(true)}, defaultListOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, accredited.ID, list[0].ID)
	assert.Equal(t, []string{"Austin", "Dallas"}, []string(list[0].MarketsInterested))

	got, err := store.GetQuestionnaire(ctx, alice, plain.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.MarketsInterested)
	require.NotNil(t, got.Contact)
	assert.Equal(t, "prospect", got.Contact.Name)

	updated, err := store.UpdateQuestionnaire(ctx, aliceID, plain.ID, map[string]interface{}{"use_financing": "no"})
	require.NoError(t, err)
	assert.Equal(t, "no", updated.UseFinancing)

	byContact, err := store.ListQuestionnairesByContact(ctx, alice, contact.ID)
	require.NoError(t, err)
	assert.Len(t, byContact, 2)

	assert.ErrorIs(t, store.DeleteQuestionnaire(ctx, bobID, plain.ID), domain.ErrNotFound)
	require.NoError(t, store.DeleteQuestionnaire(ctx, aliceID, plain.ID))
}

// =============================================================================
// Videos and feedback
// =============================================================================

func testVideos(t *testing.T, store Store) {
	ctx := context.Background()

	video := buildTestVideo(aliceID, "intro")
	require.NoError(t, store.CreateVideo(ctx, video))
	draft := buildTestVideo(aliceID, "draft")
	draft.IsPublished = false
	require.NoError(t, store.CreateVideo(ctx, draft))

	got, err := store.GetVideo(ctx, alice, draft.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsPublished)

	t.Run("published filter and feedback count", func(t *testing.T) {
		feedback := &schema.VideoFeedback{VideoID: video.ID, Responses: datatypes.JSON(`{"q1":"yes"}`)}
		require.NoError(t, store.CreateFeedback(ctx, feedback))

		videos, total, err := store.ListVideos(ctx, alice, VideoFilter{IsPublished: boolPtr(true)}, defaultListOptions())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, videos, 1)
		require.NotNil(t, videos[0].FeedbackCount)
		assert.Equal(t, int64(1), *videos[0].FeedbackCount)
		require.NotNil(t, videos[0].User)
		assert.Equal(t, "Alice Agent", videos[0].User.Name)
	})

	t.Run("toggle publish", func(t *testing.T) {
		toggled, err := store.ToggleVideoPublished(ctx, aliceID, draft.ID)
		require.NoError(t, err)
		assert.True(t, toggled.IsPublished)

		toggled, err = store.ToggleVideoPublished(ctx, aliceID, draft.ID)
		require.NoError(t, err)
		assert.False(t, toggled.IsPublished)

		_, err = store.ToggleVideoPublished(ctx, bobID, draft.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete is blocked while feedback exists", func(t *testing.T) {
		err := store.DeleteVideo(ctx, aliceID, video.ID)
		assert.ErrorIs(t, err, domain.ErrReferenced)

		exists, err := store.VideoExists(ctx, video.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("delete without feedback succeeds", func(t *testing.T) {
		assert.ErrorIs(t, store.DeleteVideo(ctx, bobID, draft.ID), domain.ErrNotFound)
		require.NoError(t, store.DeleteVideo(ctx, aliceID, draft.ID))

		exists, err := store.VideoExists(ctx, draft.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		assert.ErrorIs(t, store.DeleteVideo(ctx, aliceID, draft.ID), domain.ErrNotFound)
	})
}

func testFeedbacks(t *testing.T, store Store) {
	ctx := context.Background()
	video := buildTestVideo(aliceID, "walkthrough")
	require.NoError(t, store.CreateVideo(ctx, video))
	contact := createContact(t, store, aliceID, "viewer")

	anonymous := &schema.VideoFeedback{VideoID: video.ID, Responses: datatypes.JSON(`{"rating":5}`)}
	require.NoError(t, store.CreateFeedback(ctx, anonymous))
	linked := &schema.VideoFeedback{VideoID: video.ID, ContactID: &contact.ID, Responses: datatypes.JSON(`{"rating":3}`)}
	require.NoError(t, store.CreateFeedback(ctx, linked))

	list, total, err := store.ListFeedbacks(ctx, FeedbackFilter{ContactID: &contact.ID}, defaultListOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.NotNil(t, list[0].Video)
	assert.Equal(t, "walkthrough", list[0].Video.Title)
	require.NotNil(t, list[0].Contact)
	assert.Equal(t, "viewer", list[0].Contact.Name)

	byVideo, err := store.ListFeedbacksByVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.Len(t, byVideo, 2)

	byContact, err := store.ListFeedbacksByContact(ctx, contact.ID)
	require.NoError(t, err)
	assert.Len(t, byContact, 1)

	updated, err := store.UpdateFeedback(ctx, anonymous.ID, map[string]interface{}{"responses": datatypes.JSON(`{"rating":4}`)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rating":4}`, string(updated.Responses))

	require.NoError(t, store.DeleteFeedback(ctx, anonymous.ID))
	assert.ErrorIs(t, store.DeleteFeedback(ctx, anonymous.ID), domain.ErrNotFound)

	got, err := store.GetFeedback(ctx, anonymous.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	missingVideo := &schema.VideoFeedback{VideoID: "99999999-9999-9999-9999-999999999999", Responses: datatypes.JSON(`{}`)}
	assert.ErrorIs(t, store.CreateFeedback(ctx, missingVideo), domain.ErrNotFound)
}

// =============================================================================
// AI conversation
// =============================================================================

func testConversation(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour).UTC()

	first := createContact(t, store, aliceID, "first")
	second := createContact(t, store, aliceID, "second")
	third := createContact(t, store, aliceID, "third")

	messages := []*schema.AiMessage{
		buildTestMessage(aliceID, first.ID, domain.SenderTypeUser, "hello first", base.Add(1*time.Minute)),
		buildTestMessage(aliceID, second.ID, domain.SenderTypeUser, "hello second", base.Add(2*time.Minute)),
		buildTestMessage(aliceID, first.ID, domain.SenderTypeAI, "reply first", base.Add(5*time.Minute)),
		buildTestMessage(aliceID, third.ID, domain.SenderTypeAI, "hello third", base.Add(3*time.Minute)),
		buildTestMessage(bobID, first.ID, domain.SenderTypeUser, "not alice", base.Add(9*time.Minute)),
	}
	for _, m := range messages {
		require.NoError(t, store.CreateAiMessage(ctx, m))
	}

	ids, err := store.ListConversationContactIDs(ctx, aliceID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID, third.ID}, ids)

	latest, err := store.GetLatestAiMessage(ctx, aliceID, first.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "reply first", latest.Message)
	require.NotNil(t, latest.Contact)
	assert.Equal(t, "first", latest.Contact.Name)

	thread, err := store.ListConversation(ctx, aliceID, first.ID)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "hello first", thread[0].Message)
	assert.Equal(t, "reply first", thread[1].Message)
	require.NotNil(t, thread[0].User)
	assert.Equal(t, "Alice Agent", thread[0].User.Name)

	none, err := store.GetLatestAiMessage(ctx, bobID, second.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	deleted, err := store.DeleteAiMessagesByUser(ctx, aliceID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)

	ids, err = store.ListConversationContactIDs(ctx, aliceID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = store.ListConversationContactIDs(ctx, bobID)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID}, ids)
}

func testReplyDeliveryState(t *testing.T, store Store) {
	ctx := context.Background()
	contact := createContact(t, store, aliceID, "replying")
	now := time.Now().UTC()

	fresh := buildTestMessage(aliceID, contact.ID, domain.SenderTypeUser, "fresh", now)
	require.NoError(t, store.CreateAiMessage(ctx, fresh))
	assert.Equal(t, domain.DeliveryStatusNone, fresh.DeliveryStatus)

	t.Run("update delivery fields", func(t *testing.T) {
		workflowID := "reply-delivery-" + fresh.ID
		err := store.UpdateAiMessageDelivery(ctx, fresh.ID, ReplyDeliveryUpdate{
			Status:     domain.DeliveryStatusQueued,
			WorkflowID: &workflowID,
		})
		require.NoError(t, err)

		deliveredAt := time.Now().UTC()
		err = store.UpdateAiMessageDelivery(ctx, fresh.ID, ReplyDeliveryUpdate{
			Status:      domain.DeliveryStatusDelivered,
			Attempts:    intPtr(2),
			DeliveredAt: &deliveredAt,
		})
		require.NoError(t, err)

		got, err := store.GetAiMessage(ctx, fresh.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.DeliveryStatusDelivered, got.DeliveryStatus)
		assert.Equal(t, 2, got.DeliveryAttempts)
		require.NotNil(t, got.DeliveryWorkflowID)
		assert.Equal(t, workflowID, *got.DeliveryWorkflowID)
		assert.NotNil(t, got.DeliveredAt)
	})

	t.Run("delivered messages never return to queued", func(t *testing.T) {
		err := store.UpdateAiMessageDelivery(ctx, fresh.ID, ReplyDeliveryUpdate{Status: domain.DeliveryStatusQueued})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		got, err := store.GetAiMessage(ctx, fresh.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.DeliveryStatusDelivered, got.DeliveryStatus)
	})

	t.Run("AI messages have no delivery state", func(t *testing.T) {
		aiMessage := buildTestMessage(aliceID, contact.ID, domain.SenderTypeAI, "assistant", now)
		require.NoError(t, store.CreateAiMessage(ctx, aiMessage))
		err := store.UpdateAiMessageDelivery(ctx, aiMessage.ID, ReplyDeliveryUpdate{Status: domain.DeliveryStatusQueued})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("redeliverable replies", func(t *testing.T) {
		enqueueFailed := buildTestMessage(aliceID, contact.ID, domain.SenderTypeUser, "enqueue failed", now)
		require.NoError(t, store.CreateAiMessage(ctx, enqueueFailed))
		require.NoError(t, store.UpdateAiMessageDelivery(ctx, enqueueFailed.ID, ReplyDeliveryUpdate{
			Status: domain.DeliveryStatusFailed,
			Error:  stringPtr("temporal unavailable"),
		}))

		exhausted := buildTestMessage(aliceID, contact.ID, domain.SenderTypeUser, "exhausted", now)
		require.NoError(t, store.CreateAiMessage(ctx, exhausted))
		require.NoError(t, store.UpdateAiMessageDelivery(ctx, exhausted.ID, ReplyDeliveryUpdate{
			Status:   domain.DeliveryStatusFailed,
			Attempts: intPtr(5),
		}))

		staleQueued := buildTestMessage(aliceID, contact.ID, domain.SenderTypeUser, "stale", now.Add(-time.Hour))
		require.NoError(t, store.CreateAiMessage(ctx, staleQueued))
		require.NoError(t, store.UpdateAiMessageDelivery(ctx, staleQueued.ID, ReplyDeliveryUpdate{Status: domain.DeliveryStatusQueued}))

		recentQueued := buildTestMessage(aliceID, contact.ID, domain.SenderTypeUser, "recent", now)
		require.NoError(t, store.CreateAiMessage(ctx, recentQueued))
		require.NoError(t, store.UpdateAiMessageDelivery(ctx, recentQueued.ID, ReplyDeliveryUpdate{Status: domain.DeliveryStatusQueued}))

		replies, err := store.ListRedeliverableReplies(ctx, now.Add(-10*time.Minute), 10)
		require.NoError(t, err)
		ids := make([]string, 0, len(replies))
		for _, r := range replies {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []string{staleQueued.ID, enqueueFailed.ID}, ids)
	})
}

func testReplyDeliveries(t *testing.T, store Store) {
	ctx := context.Background()
	contact := createContact(t, store, aliceID, "delivery")
	message := buildTestMessage(aliceID, contact.ID, domain.SenderTypeUser, "ping", time.Now().UTC())
	require.NoError(t, store.CreateAiMessage(ctx, message))

	payload := []byte(`{"contactId":"c","eventId":"01JG8XAMPLE000000000000001","message":"ping"}`)
	delivery := &schema.ReplyDelivery{
		MessageID:     message.ID,
		EventID:       "01JG8XAMPLE000000000000001",
		Payload:       payload,
		WorkflowID:    "reply-delivery-" + message.ID,
		WorkflowRunID: "run-1",
		Status:        schema.ReplyDeliveryStatusPending,
	}
	require.NoError(t, store.CreateReplyDelivery(ctx, delivery))
	assert.NotZero(t, delivery.ID)

	statusCode := 502
	err := store.UpdateReplyDeliveryStatus(ctx, delivery.ID, schema.ReplyDeliveryStatusFailed, 1, &statusCode, "bad gateway", "HTTP 502")
	require.NoError(t, err)

	statusCode = 200
	err = store.UpdateReplyDeliveryStatus(ctx, delivery.ID, schema.ReplyDeliveryStatusSuccess, 2, &statusCode, `{"ok":true}`, "")
	require.NoError(t, err)

	deliveries, err := store.GetReplyDeliveriesByMessage(ctx, message.ID)
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	assert.Equal(t, schema.ReplyDeliveryStatusSuccess, deliveries[0].Status)
	assert.Equal(t, 2, deliveries[0].Attempts)
	require.NotNil(t, deliveries[0].ResponseStatus)
	assert.Equal(t, 200, *deliveries[0].ResponseStatus)
	assert.Equal(t, "HTTP 502", deliveries[0].ErrorMessage)
	assert.NotNil(t, deliveries[0].LastAttemptAt)

	orphan := &schema.ReplyDelivery{
		MessageID:  "99999999-9999-9999-9999-999999999999",
		EventID:    "01JG8XAMPLE000000000000002",
		Payload:    payload,
		WorkflowID: "reply-delivery-orphan",
		Status:     schema.ReplyDeliveryStatusPending,
	}
	assert.Error(t, store.CreateReplyDelivery(ctx, orphan), "Should reject unknown message_id due to foreign key constraint")
}

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()

	user, err := store.GetUserByID(ctx, adminID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, "Ada Admin", user.Name)

	user, err = store.GetUserByID(ctx, "99999999-9999-9999-9999-999999999999")
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, store.Ping(ctx))
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Users", testUsers},
		{"CreateContact", testCreateContact},
		{"ContactOwnership", testContactOwnership},
		{"ListContactsPagination", testListContactsPagination},
		{"ListContactsFilters", testListContactsFilters},
		{"ContactTags", testContactTags},
		{"FindContactWithPinByPhone", testFindContactWithPinByPhone},
		{"Calculations", testCalculations},
		{"Questionnaires", testQuestionnaires},
		{"Videos", testVideos},
		{"Feedbacks", testFeedbacks},
		{"Conversation", testConversation},
		{"ReplyDeliveryState", testReplyDeliveryState},
		{"ReplyDeliveries", testReplyDeliveries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

func TestListOptionsOffset(t *testing.T) {
	assert.Equal(t, int64(0), ListOptions{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, int64(0), ListOptions{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, int64(20), ListOptions{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, int64(1<<40-1)*200, ListOptions{Page: 1 << 40, Limit: 200}.Offset())
}
