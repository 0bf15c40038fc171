package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/realty-crm/internal/api/rest"
	"github.com/feral-file/realty-crm/internal/api/server"
	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/mocks"
	"github.com/feral-file/realty-crm/internal/ratelimit"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
	aliceID    = "11111111-1111-1111-1111-111111111111"
	adminID    = "33333333-3333-3333-3333-333333333333"
	contactID  = "44444444-4444-4444-4444-444444444444"
	videoID    = "55555555-5555-5555-5555-555555555555"
)

var (
	alice = domain.Caller{ID: aliceID, Name: "Alice Agent", Role: domain.RoleUser}
	admin = domain.Caller{ID: adminID, Name: "Ada Admin", Role: domain.RoleAdmin}
)

// testHandlerMocks contains the mocks behind a fully routed server
type testHandlerMocks struct {
	ctrl     *gomock.Controller
	executor *mocks.MockAPIExecutor
	limiter  *mocks.MockRateLimiter
	router   *gin.Engine
}

func setupTestHandler(t *testing.T) *testHandlerMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)
	limiter := mocks.NewMockRateLimiter(ctrl)
	verifier := mocks.NewMockTokenVerifier(ctrl)
	users := mocks.NewMockUserCache(ctrl)

	verifier.EXPECT().Verify(userToken).Return(&jwt.RegisteredClaims{Subject: aliceID}, nil).AnyTimes()
	verifier.EXPECT().Verify(adminToken).Return(&jwt.RegisteredClaims{Subject: adminID}, nil).AnyTimes()
	verifier.EXPECT().Verify(gomock.Any()).Return(nil, errors.New("invalid token")).AnyTimes()
	users.EXPECT().Get(gomock.Any(), aliceID).Return(&schema.User{ID: aliceID, Name: alice.Name, Role: domain.RoleUser}, nil).AnyTimes()
	users.EXPECT().Get(gomock.Any(), adminID).Return(&schema.User{ID: adminID, Name: admin.Name, Role: domain.RoleAdmin}, nil).AnyTimes()

	srv := server.New(server.Config{}, rest.NewHandler(false, exec), rest.RouteConfig{
		Verifier: verifier,
		Users:    users,
		Limiter:  limiter,
	}, nil)

	return &testHandlerMocks{
		ctrl:     ctrl,
		executor: exec,
		limiter:  limiter,
		router:   srv.Router(),
	}
}

func (m *testHandlerMocks) do(method, path, token string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealthCheck(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	m.executor.EXPECT().Ping(gomock.Any()).Return(nil)
	w := m.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.HealthResponse{Status: "ok", Service: "realty-crm-api"}, decode[dto.HealthResponse](t, w))

	m.executor.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	w = m.do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unavailable", decode[dto.HealthResponse](t, w).Status)
}

func TestNoRoute(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	w := m.do(http.MethodGet, "/api/v1/unknown", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "not_found", resp.Error.Code)
}

func TestUnauthenticated(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	for _, path := range []string{"/api/v1/contacts", "/api/v1/videos", "/api/v1/ai/conversations"} {
		w := m.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := m.do(http.MethodGet, "/api/v1/contacts", "forged", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListContacts(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	expected := dto.NewList([]schema.Contact{{ID: contactID, Name: "Jane Buyer"}}, 1, 2, 5)
	m.executor.EXPECT().
		ListContacts(gomock.Any(), alice, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Caller, query dto.ContactListQuery) (*dto.ListResponse[schema.Contact], error) {
			assert.Equal(t, 2, query.Page)
			require.NotNil(t, query.Limit)
			assert.Equal(t, 5, *query.Limit)
			assert.Equal(t, "name", query.SortBy)
			assert.Equal(t, "asc", query.Order)
			require.NotNil(t, query.Tag)
			assert.Equal(t, "vip", *query.Tag)
			return &expected, nil
		})

	w := m.do(http.MethodGet, "/api/v1/contacts?page=2&limit=5&sortBy=name&order=asc&tag=vip", userToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.ListResponse[schema.Contact]](t, w)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, dto.Pagination{Total: 1, Page: 2, Limit: 5, Pages: 1}, resp.Pagination)
}

func TestListContacts_ValidationError(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	m.executor.EXPECT().
		ListContacts(gomock.Any(), alice, gomock.Any()).
		Return(nil, apierrors.NewValidationError("order must be asc or desc"))

	w := m.do(http.MethodGet, "/api/v1/contacts?order=up", userToken, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "order must be asc or desc", resp.Message)
}

func TestListContacts_NonNumericPage(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	w := m.do(http.MethodGet, "/api/v1/contacts?page=first", userToken, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateContact(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	body := []byte(`{"name":"Jane Buyer"}`)
	m.executor.EXPECT().
		CreateContact(gomock.Any(), alice, body).
		Return(&schema.Contact{ID: contactID, Name: "Jane Buyer"}, nil)

	w := m.do(http.MethodPost, "/api/v1/contacts", userToken, body)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[map[string]interface{}](t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Contact created successfully", resp["message"])
	assert.Equal(t, contactID, resp["data"].(map[string]interface{})["id"])
}

func TestGetContact_NotFound(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	m.executor.EXPECT().
		GetContact(gomock.Any(), alice, contactID).
		Return(nil, apierrors.NewNotFoundError("Contact not found"))

	w := m.do(http.MethodGet, "/api/v1/contacts/"+contactID, userToken, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Contact not found", decode[dto.ErrorResponse](t, w).Message)
}

func TestDeleteContact_UnexpectedError(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	m.executor.EXPECT().DeleteContact(gomock.Any(), alice, contactID).Return(errors.New("boom"))

	w := m.do(http.MethodDelete, "/api/v1/contacts/"+contactID, userToken, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", decode[dto.ErrorResponse](t, w).Error.Code)
}

func TestLookupPin_RoutedBeforeID(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	pin := "4321"
	body := []byte(`{"phoneNumber":"+15551234567"}`)
	m.executor.EXPECT().LookupPin(gomock.Any(), alice, body).Return(&dto.ContactPin{ID: contactID, Pin: &pin}, nil)

	w := m.do(http.MethodPost, "/api/v1/contacts/pin", userToken, body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListContactCalculations(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	m.executor.EXPECT().
		ListContactCalculations(gomock.Any(), alice, contactID).
		Return(nil, nil)

	w := m.do(http.MethodGet, "/api/v1/contacts/"+contactID+"/calculations", userToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.CountResponse[schema.InvestmentCalculation]](t, w)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Data)
}

func TestToggleVideoPublished(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	m.executor.EXPECT().
		ToggleVideoPublished(gomock.Any(), alice, videoID).
		Return(&schema.Video{ID: videoID, IsPublished: false}, nil)

	w := m.do(http.MethodPatch, "/api/v1/videos/"+videoID+"/publish", userToken, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Video unpublished successfully", decode[dto.Response](t, w).Message)
}

func TestDeleteVideo_WithFeedback(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	m.executor.EXPECT().
		DeleteVideo(gomock.Any(), alice, videoID).
		Return(apierrors.NewBadRequestError("Cannot delete video with existing feedback"))

	w := m.do(http.MethodDelete, "/api/v1/videos/"+videoID, userToken, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbacks_PublicCreate(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	body := []byte(`{"videoId":"` + videoID + `","responses":{"rating":5}}`)
	m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Decision{Allowed: true, Remaining: 9}, nil)
	m.executor.EXPECT().CreateFeedback(gomock.Any(), body).Return(&schema.VideoFeedback{VideoID: videoID}, nil)

	w := m.do(http.MethodPost, "/api/v1/feedbacks", "", body)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestFeedbacks_AdminOnly(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	w := m.do(http.MethodGet, "/api/v1/feedbacks", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	expected := dto.NewList[schema.VideoFeedback](nil, 0, 1, 10)
	m.executor.EXPECT().ListFeedbacks(gomock.Any(), gomock.Any()).Return(&expected, nil)

	w = m.do(http.MethodGet, "/api/v1/feedbacks", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFeedbacks_VideoRouteIsNotAnID(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	m.executor.EXPECT().ListVideoFeedbacks(gomock.Any(), videoID).Return([]schema.VideoFeedback{}, nil)

	w := m.do(http.MethodGet, "/api/v1/feedbacks/videos/"+videoID, adminToken, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleInboundMessage_AlwaysOK(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	body := []byte(`{"message":"Hi"}`)
	m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Decision{Allowed: true}, nil)
	m.executor.EXPECT().
		HandleInboundMessage(gomock.Any(), body).
		Return(&dto.WebhookAck{Success: true, Message: "Received, but missing required fields."})

	w := m.do(http.MethodPost, "/api/v1/ai/webhook", "", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Received, but missing required fields.", decode[dto.WebhookAck](t, w).Message)
}

func TestHandleUserReply(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	body := []byte(`{"message":"Hi","contactId":"` + contactID + `"}`)
	m.executor.EXPECT().
		HandleUserReply(gomock.Any(), alice, body).
		Return(&dto.ReplyResponse{Success: true, Message: "User message saved and AI response queued.", Data: &schema.AiMessage{ID: "m1"}}, nil)

	w := m.do(http.MethodPost, "/api/v1/ai/reply", userToken, body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User message saved and AI response queued.", decode[dto.ReplyResponse](t, w).Message)
}

func TestGetConversation(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	m.executor.EXPECT().
		GetConversation(gomock.Any(), alice, contactID).
		Return([]schema.AiMessage{{ID: "m1"}, {ID: "m2"}}, nil)

	w := m.do(http.MethodGet, "/api/v1/ai/conversations/"+contactID, userToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.ConversationResponse](t, w)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, contactID, resp.ContactID)
}

func TestClearConversationHistory(t *testing.T) {
	m := setupTestHandler(t)
	defer m.ctrl.Finish()

	m.executor.EXPECT().ClearConversationHistory(gomock.Any(), alice).Return(int64(4), nil)

	w := m.do(http.MethodDelete, "/api/v1/ai/conversations", userToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.ClearResponse](t, w)
	assert.Equal(t, int64(4), resp.Count)
	assert.Equal(t, "User's conversation history cleared successfully", resp.Message)
}
