package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/james-eo/task-manager/internal/adapter/http/dto"
	"github.com/james-eo/task-manager/internal/adapter/http/handlers"
	"github.com/james-eo/task-manager/internal/adapter/http/middleware"
	"github.com/james-eo/task-manager/internal/adapter/memory"
	"github.com/james-eo/task-manager/internal/core/domain"
	"github.com/james-eo/task-manager/pkg/apierrors"
	"github.com/james-eo/task-manager/pkg/translator"
)

type trackerMock struct {
	mock.Mock
}

func (m *trackerMock) Handle(ctx context.Context, ownerID, lang, message string, now time.Time) string {
	args := m.Called(ctx, ownerID, lang, message, now)
	return args.String(0)
}

func newAgentRouter(handler *handlers.AgentHandler) *gin.Engine {
	router := gin.New()
	a2a := router.Group("/a2a")
	a2a.Use(middleware.LanguageMiddleware())
	{
		a2a.POST("/agent/taskTracker", handler.HandleMessage)
		a2a.POST("/test", handler.HandleTest)
		a2a.GET("/tasks", handler.ListTasks)
	}
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	return rec
}

func TestAgentHandler_HandleMessage_Success(t *testing.T) {
	tracker := new(trackerMock)
	tracker.On("Handle", mock.Anything, "user-1", translator.LanguageEn, "list tasks", mock.Anything).
		Return("📋 **Your Tasks:**").Once()

	handler := handlers.NewAgentHandler(tracker, memory.NewTaskStore())
	router := newAgentRouter(handler)

	rec := postJSON(t, router, "/a2a/agent/taskTracker", dto.AgentRequest{
		MessageID: "msg-1",
		UserID:    "user-1",
		ChannelID: "chan-1",
		Content:   "list tasks",
		Timestamp: "2025-01-01T00:00:00Z",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.AgentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "📋 **Your Tasks:**", got.Content)
	require.Equal(t, "TaskTracker", got.Metadata.AgentName)
	require.Equal(t, "msg-1", got.Metadata.OriginalMessageID)
	require.NotEmpty(t, got.MessageID)
	tracker.AssertExpectations(t)
}

func TestAgentHandler_HandleMessage_EmptyEnvelopeAnswersValidatorProbe(t *testing.T) {
	tracker := new(trackerMock)
	handler := handlers.NewAgentHandler(tracker, memory.NewTaskStore())
	router := newAgentRouter(handler)

	rec := postJSON(t, router, "/a2a/agent/taskTracker", map[string]any{})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "healthy and ready")
	tracker.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAgentHandler_HandleMessage_MissingFields(t *testing.T) {
	tracker := new(trackerMock)
	handler := handlers.NewAgentHandler(tracker, memory.NewTaskStore())
	router := newAgentRouter(handler)

	rec := postJSON(t, router, "/a2a/agent/taskTracker", dto.AgentRequest{
		MessageID: "msg-1",
		Content:   "list tasks",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusBadRequest, got.ErrDetails.Code)
	require.Equal(t, "Missing required fields: messageId, userId, content.", got.ErrDetails.Message)
}

func TestAgentHandler_HandleMessage_MalformedJSON(t *testing.T) {
	tracker := new(trackerMock)
	handler := handlers.NewAgentHandler(tracker, memory.NewTaskStore())
	router := newAgentRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/a2a/agent/taskTracker", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAgentHandler_HandleTest_DefaultsUser(t *testing.T) {
	tracker := new(trackerMock)
	tracker.On("Handle", mock.Anything, "test-user", translator.LanguageEn, "help", mock.Anything).
		Return("commands").Once()

	handler := handlers.NewAgentHandler(tracker, memory.NewTaskStore())
	router := newAgentRouter(handler)

	rec := postJSON(t, router, "/a2a/test", dto.TestRequest{Message: "help"})

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "commands", got.Response)
	tracker.AssertExpectations(t)
}

func TestAgentHandler_HandleTest_MessageRequired(t *testing.T) {
	tracker := new(trackerMock)
	handler := handlers.NewAgentHandler(tracker, memory.NewTaskStore())
	router := newAgentRouter(handler)

	rec := postJSON(t, router, "/a2a/test", dto.TestRequest{Message: "   "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAgentHandler_ListTasks(t *testing.T) {
	store := memory.NewTaskStore()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := store.Insert(context.Background(), "user-1", domain.CreateTaskInput{
		Title:    "Review proposal",
		Priority: domain.TaskPriorityHigh,
	}, now)
	require.NoError(t, err)

	handler := handlers.NewAgentHandler(new(trackerMock), store)
	router := newAgentRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/a2a/tasks?userId=user-1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskGroup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 4)
	require.Equal(t, "pending", got[0].Status)
	require.Len(t, got[0].Tasks, 1)
	require.Equal(t, "Review proposal", got[0].Tasks[0].Title)
	require.Equal(t, "high", got[0].Tasks[0].Priority)
}

func TestAgentHandler_ListTasks_RequiresUserID(t *testing.T) {
	handler := handlers.NewAgentHandler(new(trackerMock), memory.NewTaskStore())
	router := newAgentRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/a2a/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
