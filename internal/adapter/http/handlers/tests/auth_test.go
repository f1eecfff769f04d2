package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/session"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(authService *authServiceMock, sessions ports.SessionIssuer) *gin.Engine {
	handler := handlers.NewAuthHandler(authService, sessions)

	router := gin.New()
	router.Use(middleware.LanguageMiddleware())
	router.POST("/api/auth/register", handler.Register)
	router.POST("/api/auth/login", handler.Login)
	return router
}

func TestAuthHandler_Register_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 0, 0, 0, time.UTC)
	authMock := new(authServiceMock)
	authMock.On("Register", mock.Anything, domain.RegisterInput{Email: "a@x.com", Password: "secret1"}).
		Return(domain.User{ID: 1, Email: "a@x.com", PasswordHash: "$2a$10$hash", CreatedAt: createdAt}, nil).Once()
	router := newAuthRouter(authMock, session.HeaderResolver{})

	rec := doRequest(router, http.MethodPost, "/api/auth/register", "", `{"email":"a@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "User created successfully", got.Message)
	require.Equal(t, uint64(1), got.User.ID)
	require.Equal(t, "a@x.com", got.User.Email)
	require.Nil(t, got.User.Name)
	require.Empty(t, got.Token)
	require.NotContains(t, rec.Body.String(), "hash")
	require.NotContains(t, rec.Body.String(), "password")
	authMock.AssertExpectations(t)
}

func TestAuthHandler_Register_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing password", body: `{"email":"a@x.com"}`, message: "Email and password are required"},
		{name: "missing email", body: `{"password":"secret1"}`, message: "Email and password are required"},
		{name: "short password", body: `{"email":"a@x.com","password":"12345"}`, message: "Password must be at least 6 characters"},
		{name: "long password", body: `{"email":"a@x.com","password":"` + strings.Repeat("p", 73) + `"}`, message: "Password must be at most 72 bytes"},
		{name: "malformed email", body: `{"email":"not-an-email","password":"secret1"}`, message: "Email must be a valid address of at most 255 characters"},
		{name: "email too long", body: `{"email":"` + strings.Repeat("a", 250) + `@x.com","password":"secret1"}`, message: "Email must be a valid address of at most 255 characters"},
		{name: "name too long", body: `{"email":"a@x.com","password":"secret1","name":"` + strings.Repeat("n", 256) + `"}`, message: "Name must be at most 255 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			authMock := new(authServiceMock)
			router := newAuthRouter(authMock, session.HeaderResolver{})

			rec := doRequest(router, http.MethodPost, "/api/auth/register", "", tc.body)

			requireErrorBody(t, rec, http.StatusBadRequest, tc.message)
			authMock.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthHandler_Register_PaddedEmail(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Register", mock.Anything, domain.RegisterInput{Email: "Q@x.com", Password: "secret1"}).
		Return(domain.User{ID: 7, Email: "q@x.com"}, nil).Once()
	router := newAuthRouter(authMock, session.HeaderResolver{})

	rec := doRequest(router, http.MethodPost, "/api/auth/register", "", `{"email":" Q@x.com ","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	authMock.AssertExpectations(t)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Register", mock.Anything, mock.Anything).Return(domain.User{}, domain.ErrDuplicateEmail).Once()
	router := newAuthRouter(authMock, session.HeaderResolver{})

	rec := doRequest(router, http.MethodPost, "/api/auth/register", "", `{"email":"A@x.com","password":"secret1"}`)

	requireErrorBody(t, rec, http.StatusBadRequest, "User already exists")
}

func TestAuthHandler_Login(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Authenticate", mock.Anything, domain.Credentials{Email: "a@x.com", Password: "secret1"}).
		Return(domain.User{ID: 1, Email: "a@x.com"}, nil).Once()
	authMock.On("Authenticate", mock.Anything, domain.Credentials{Email: "a@x.com", Password: "wrong!!"}).
		Return(domain.User{}, domain.ErrInvalidCredentials).Once()
	authMock.On("Authenticate", mock.Anything, domain.Credentials{Email: "ghost@x.com", Password: "secret1"}).
		Return(domain.User{}, domain.ErrInvalidCredentials).Once()
	router := newAuthRouter(authMock, session.HeaderResolver{})

	rec := doRequest(router, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Login successful", got.Message)
	require.Equal(t, uint64(1), got.User.ID)

	wrongPassword := doRequest(router, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com","password":"wrong!!"}`)
	unknownEmail := doRequest(router, http.MethodPost, "/api/auth/login", "", `{"email":"ghost@x.com","password":"secret1"}`)
	requireErrorBody(t, wrongPassword, http.StatusUnauthorized, "Invalid credentials")
	requireErrorBody(t, unknownEmail, http.StatusUnauthorized, "Invalid credentials")
	require.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	missing := doRequest(router, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com"}`)
	requireErrorBody(t, missing, http.StatusBadRequest, "Email and password are required")
	authMock.AssertExpectations(t)
}

func TestAuthHandler_Login_IssuesToken(t *testing.T) {
	issuer := session.NewTokenResolver("test-secret", time.Hour, "taskboard")
	authMock := new(authServiceMock)
	authMock.On("Authenticate", mock.Anything, mock.Anything).Return(domain.User{ID: 9, Email: "a@x.com"}, nil).Once()
	router := newAuthRouter(authMock, issuer)

	rec := doRequest(router, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got.Token)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(session.AuthorizationHeader, "Bearer "+got.Token)
	userID, err := issuer.Resolve(req)
	require.NoError(t, err)
	require.Equal(t, uint64(9), userID)
}

func TestAuthHandler_Login_StoreFailure(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Authenticate", mock.Anything, mock.Anything).Return(domain.User{}, errors.New("db is down")).Once()
	router := newAuthRouter(authMock, session.HeaderResolver{})

	rec := doRequest(router, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com","password":"secret1"}`)

	requireErrorBody(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestAuthMiddleware(t *testing.T) {
	users := new(authServiceMock)
	users.On("Lookup", mock.Anything, uint64(1)).Return(domain.User{ID: 1}, nil)
	users.On("Lookup", mock.Anything, uint64(999)).Return(domain.User{}, domain.ErrUserNotFound)
	users.On("Lookup", mock.Anything, uint64(7)).Return(domain.User{}, errors.New("db is down"))

	serviceMock := new(taskServiceMock)
	serviceMock.On("TaskStats", mock.Anything, uint64(1)).Return(domain.TaskStats{}, nil)
	router := newTaskRouter(serviceMock, users)

	cases := []struct {
		name    string
		userID  string
		status  int
		message string
	}{
		{name: "missing header", userID: "", status: http.StatusUnauthorized, message: "Authentication required"},
		{name: "non numeric", userID: "abc", status: http.StatusUnauthorized, message: "Invalid user"},
		{name: "zero", userID: "0", status: http.StatusUnauthorized, message: "Invalid user"},
		{name: "unknown user", userID: "999", status: http.StatusUnauthorized, message: "Invalid user"},
		{name: "lookup failure", userID: "7", status: http.StatusInternalServerError, message: "Authentication error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(router, http.MethodGet, "/api/tasks/stats", tc.userID, "")
			requireErrorBody(t, rec, tc.status, tc.message)
		})
	}

	rec := doRequest(router, http.MethodGet, "/api/tasks/stats", "1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertNumberOfCalls(t, "TaskStats", 1)
}

func TestAuthMiddleware_TranslatesMessages(t *testing.T) {
	router := newTaskRouter(new(taskServiceMock), new(authServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotContains(t, rec.Body.String(), "Authentication required")
}
