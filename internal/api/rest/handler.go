package rest

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/realty-crm/internal/api/middleware"
	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	"github.com/feral-file/realty-crm/internal/api/shared/executor"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
)

// MaxBodySize bounds every JSON request body
const MaxBodySize = 1 << 20

const serviceName = "realty-crm-api"

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Contacts
	// GET /api/v1/contacts?page=&limit=&sortBy=&order=&status=&pipelineStage=&tag=&search=
	ListContacts(c *gin.Context)
	// GET /api/v1/contacts/:id
	GetContact(c *gin.Context)
	// POST /api/v1/contacts
	CreateContact(c *gin.Context)
	// PUT /api/v1/contacts/:id
	UpdateContact(c *gin.Context)
	// DELETE /api/v1/contacts/:id
	DeleteContact(c *gin.Context)
	// PUT /api/v1/contacts/:id/tags/add
	AddContactTags(c *gin.Context)
	// PUT /api/v1/contacts/:id/tags/remove
	RemoveContactTags(c *gin.Context)
	// PUT /api/v1/contacts/:id/pipeline-stage
	UpdatePipelineStage(c *gin.Context)
	// POST /api/v1/contacts/pin
	LookupPin(c *gin.Context)
	// GET /api/v1/contacts/:id/calculations
	ListContactCalculations(c *gin.Context)
	// GET /api/v1/contacts/:id/questionnaires
	ListContactQuestionnaires(c *gin.Context)
	// GET /api/v1/contacts/:id/feedbacks
	ListContactFeedbacks(c *gin.Context)

	// Investment calculations
	ListCalculations(c *gin.Context)
	GetCalculation(c *gin.Context)
	CreateCalculation(c *gin.Context)
	UpdateCalculation(c *gin.Context)
	DeleteCalculation(c *gin.Context)

	// Investor questionnaires
	ListQuestionnaires(c *gin.Context)
	GetQuestionnaire(c *gin.Context)
	CreateQuestionnaire(c *gin.Context)
	UpdateQuestionnaire(c *gin.Context)
	DeleteQuestionnaire(c *gin.Context)

	// Videos
	ListVideos(c *gin.Context)
	GetVideo(c *gin.Context)
	CreateVideo(c *gin.Context)
	UpdateVideo(c *gin.Context)
	DeleteVideo(c *gin.Context)
	// PATCH /api/v1/videos/:id/publish
	ToggleVideoPublished(c *gin.Context)

	// Video feedback
	ListFeedbacks(c *gin.Context)
	GetFeedback(c *gin.Context)
	// POST /api/v1/feedbacks (public, rate limited)
	CreateFeedback(c *gin.Context)
	UpdateFeedback(c *gin.Context)
	DeleteFeedback(c *gin.Context)
	// GET /api/v1/feedbacks/videos/:id
	ListVideoFeedbacks(c *gin.Context)
	// GET /api/v1/feedbacks/contacts/:id
	ListFeedbacksForContact(c *gin.Context)

	// AI conversation
	// POST /api/v1/ai/webhook, always answers 200
	HandleInboundMessage(c *gin.Context)
	// POST /api/v1/ai/reply
	HandleUserReply(c *gin.Context)
	// GET /api/v1/ai/conversations
	ListConversations(c *gin.Context)
	// GET /api/v1/ai/conversations/:id
	GetConversation(c *gin.Context)
	// DELETE /api/v1/ai/conversations
	ClearConversationHistory(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// requireCaller returns the authenticated caller or writes a 401
func requireCaller(c *gin.Context) (domain.Caller, bool) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return domain.Caller{}, false
	}
	return caller, true
}

// readBody reads the raw JSON body or writes a 400
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize))
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return nil, false
	}
	return body, true
}

// bindQuery binds the query string or writes a 400
func bindQuery(c *gin.Context, query interface{}) bool {
	if err := c.ShouldBindQuery(query); err != nil {
		respondValidationError(c, "Invalid query parameters", err.Error())
		return false
	}
	return true
}

func respondData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, dto.Response{Success: true, Message: message, Data: data})
}

// =============================================================================
// Contacts
// =============================================================================

func (h *handler) ListContacts(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var query dto.ContactListQuery
	if !bindQuery(c, &query) {
		return
	}

	result, err := h.executor.ListContacts(c.Request.Context(), caller, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) GetContact(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	contact, err := h.executor.GetContact(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "", contact)
}

func (h *handler) CreateContact(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	contact, err := h.executor.CreateContact(c.Request.Context(), caller, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "Contact created successfully", contact)
}

func (h *handler) UpdateContact(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	contact, err := h.executor.UpdateContact(c.Request.Context(), caller, c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Contact updated successfully", contact)
}

func (h *handler) DeleteContact(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.executor.DeleteContact(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Contact deleted successfully", nil)
}

func (h *handler) AddContactTags(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	contact, err := h.executor.AddContactTags(c.Request.Context(), caller, c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Tags added successfully", contact)
}

func (h *handler) RemoveContactTags(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	contact, err := h.executor.RemoveContactTags(c.Request.Context(), caller, c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Tags removed successfully", contact)
}

func (h *handler) UpdatePipelineStage(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	contact, err := h.executor.UpdatePipelineStage(c.Request.Context(), caller, c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Pipeline stage updated successfully", contact)
}

func (h *handler) LookupPin(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	pin, err := h.executor.LookupPin(c.Request.Context(), caller, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "", pin)
}

func (h *handler) ListContactCalculations(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	calculations, err := h.executor.ListContactCalculations(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCount(calculations))
}

func (h *handler) ListContactQuestionnaires(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	questionnaires, err := h.executor.ListContactQuestionnaires(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCount(questionnaires))
}

func (h *handler) ListContactFeedbacks(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	feedbacks, err := h.executor.ListContactFeedbacks(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCount(feedbacks))
}

// =============================================================================
// Investment calculations
// =============================================================================

func (h *handler) ListCalculations(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var query dto.CalculationListQuery
	if !bindQuery(c, &query) {
		return
	}

	result, err := h.executor.ListCalculations(c.Request.Context(), caller, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) GetCalculation(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	calculation, err := h.executor.GetCalculation(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "", calculation)
}

func (h *handler) CreateCalculation(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	calculation, err := h.executor.CreateCalculation(c.Request.Context(), caller, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "Investment calculation created successfully", calculation)
}

func (h *handler) UpdateCalculation(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	calculation, err := h.executor.UpdateCalculation(c.Request.Context(), caller, c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Investment calculation updated successfully", calculation)
}

func (h *handler) DeleteCalculation(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.executor.DeleteCalculation(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Investment calculation deleted successfully", nil)
}

// =============================================================================
// Investor questionnaires
// =============================================================================

func (h *handler) ListQuestionnaires(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var query dto.QuestionnaireListQuery
	if !bindQuery(c, &query) {
		return
	}

	result, err := h.executor.ListQuestionnaires(c.Request.Context(), caller, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) GetQuestionnaire(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	questionnaire, err := h.executor.GetQuestionnaire(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "", questionnaire)
}

func (h *handler) CreateQuestionnaire(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	questionnaire, err := h.executor.CreateQuestionnaire(c.Request.Context(), caller, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "Investor questionnaire created successfully", questionnaire)
}

func (h *handler) UpdateQuestionnaire(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	questionnaire, err := h.executor.UpdateQuestionnaire(c.Request.Context(), caller, c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Investor questionnaire updated successfully", questionnaire)
}

func (h *handler) DeleteQuestionnaire(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.executor.DeleteQuestionnaire(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Investor questionnaire deleted successfully", nil)
}

// =============================================================================
// Videos
// =============================================================================

func (h *handler) ListVideos(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var query dto.VideoListQuery
	if !bindQuery(c, &query) {
		return
	}

	result, err := h.executor.ListVideos(c.Request.Context(), caller, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) GetVideo(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	video, err := h.executor.GetVideo(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "", video)
}

func (h *handler) CreateVideo(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	video, err := h.executor.CreateVideo(c.Request.Context(), caller, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "Video created successfully", video)
}

func (h *handler) UpdateVideo(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	video, err := h.executor.UpdateVideo(c.Request.Context(), caller, c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Video updated successfully", video)
}

func (h *handler) DeleteVideo(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.executor.DeleteVideo(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Video deleted successfully", nil)
}

func (h *handler) ToggleVideoPublished(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	video, err := h.executor.ToggleVideoPublished(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	state := "unpublished"
	if video.IsPublished {
		state = "published"
	}
	respondData(c, http.StatusOK, fmt.Sprintf("Video %s successfully", state), video)
}

// =============================================================================
// Video feedback
// =============================================================================

func (h *handler) ListFeedbacks(c *gin.Context) {
	var query dto.FeedbackListQuery
	if !bindQuery(c, &query) {
		return
	}

	result, err := h.executor.ListFeedbacks(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) GetFeedback(c *gin.Context) {
	feedback, err := h.executor.GetFeedback(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "", feedback)
}

func (h *handler) CreateFeedback(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	feedback, err := h.executor.CreateFeedback(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "Video feedback created successfully", feedback)
}

func (h *handler) UpdateFeedback(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	feedback, err := h.executor.UpdateFeedback(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Video feedback updated successfully", feedback)
}

func (h *handler) DeleteFeedback(c *gin.Context) {
	if err := h.executor.DeleteFeedback(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Video feedback deleted successfully", nil)
}

func (h *handler) ListVideoFeedbacks(c *gin.Context) {
	feedbacks, err := h.executor.ListVideoFeedbacks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCount(feedbacks))
}

func (h *handler) ListFeedbacksForContact(c *gin.Context) {
	feedbacks, err := h.executor.ListFeedbacksForContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCount(feedbacks))
}

// =============================================================================
// AI conversation
// =============================================================================

func (h *handler) HandleInboundMessage(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize))
	if err != nil {
		logger.WarnCtx(c.Request.Context(), "Failed to read webhook body")
		body = nil
	}

	c.JSON(http.StatusOK, h.executor.HandleInboundMessage(c.Request.Context(), body))
}

func (h *handler) HandleUserReply(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	result, err := h.executor.HandleUserReply(c.Request.Context(), caller, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *handler) ListConversations(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	conversations, err := h.executor.ListConversations(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCount(conversations))
}

func (h *handler) GetConversation(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	contactID := c.Param("id")

	messages, err := h.executor.GetConversation(c.Request.Context(), caller, contactID)
	if err != nil {
		respondError(c, err)
		return
	}
	count := dto.NewCount(messages)
	c.JSON(http.StatusOK, dto.ConversationResponse{
		Success:   true,
		Count:     count.Count,
		Data:      count.Data,
		ContactID: contactID,
	})
}

func (h *handler) ClearConversationHistory(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	count, err := h.executor.ClearConversationHistory(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ClearResponse{
		Success: true,
		Message: "User's conversation history cleared successfully",
		Count:   count,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.executor.Ping(c.Request.Context()); err != nil {
		logger.ErrorCtx(c.Request.Context(), fmt.Errorf("health check failed: %w", err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Service: serviceName})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Service: serviceName})
}
