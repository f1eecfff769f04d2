package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/session"
	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
	"taskboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Authenticate(ctx context.Context, credentials domain.Credentials) (domain.User, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Lookup(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

// knownUsers returns an auth mock whose Lookup accepts the given ids.
func knownUsers(ids ...uint64) *authServiceMock {
	users := new(authServiceMock)
	for _, id := range ids {
		users.On("Lookup", mock.Anything, id).Return(domain.User{ID: id}, nil).Maybe()
	}
	return users
}

func newTaskRouter(taskService *taskServiceMock, users *authServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(taskService)

	router := gin.New()
	router.Use(middleware.LanguageMiddleware())
	tasks := router.Group("/api/tasks", middleware.AuthMiddleware(session.HeaderResolver{}, users))
	tasks.GET("", handler.ListTasks)
	tasks.GET("/stats", handler.TaskStats)
	tasks.POST("", handler.CreateTask)
	tasks.PUT("/:id", handler.UpdateTask)
	tasks.DELETE("/:id", handler.DeleteTask)
	return router
}

func doRequest(router http.Handler, method, path, userID, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(session.UserIDHeader, userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, message, got.Message)
}
