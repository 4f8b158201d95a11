package guest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req RegisterRequest) (*Guest, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*Guest), args.String(1), args.String(2), args.Error(3)
}

func (m *MockService) Login(ctx context.Context, req LoginRequest) (*Guest, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*Guest), args.String(1), args.String(2), args.Error(3)
}

func (m *MockService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, guestID int) (*Guest, error) {
	args := m.Called(ctx, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Guest), args.Error(1)
}

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	r.GET("/me", func(c *gin.Context) {
		c.Set("guest_id", 1)
		h.GetMe(c)
	})
	return r
}

func TestHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Register", mock.Anything, RegisterRequest{
			Name: "Alice", Email: "alice@example.com", Password: "password123",
		}).Return(&Guest{ID: 1, Name: "Alice", Email: "alice@example.com", Role: "guest"}, "access", "refresh", nil)

		r := setupRouter(NewHandler(svc))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/register",
			strings.NewReader(`{"name":"Alice","email":"alice@example.com","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"access"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, "", "", ErrEmailExists)

		r := setupRouter(NewHandler(svc))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/register",
			strings.NewReader(`{"name":"Alice","email":"alice@example.com","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password rejected by binding", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(NewHandler(svc))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/register",
			strings.NewReader(`{"name":"Alice","email":"alice@example.com","password":"short"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Register")
	})
}

func TestHandler_Login(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Login", mock.Anything, LoginRequest{
			Email: "alice@example.com", Password: "password123",
		}).Return(&Guest{ID: 1, Email: "alice@example.com"}, "access", "refresh", nil)

		r := setupRouter(NewHandler(svc))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/login",
			strings.NewReader(`{"email":"alice@example.com","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"refresh_token":"refresh"`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Login", mock.Anything, mock.Anything).Return(nil, "", "", ErrInvalidCredentials)

		r := setupRouter(NewHandler(svc))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/login",
			strings.NewReader(`{"email":"alice@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Refresh(t *testing.T) {
	t.Run("new access token issued", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Refresh", mock.Anything, "refresh-token").Return("new-access", nil)

		r := setupRouter(NewHandler(svc))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/refresh",
			strings.NewReader(`{"refresh_token":"refresh-token"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"new-access"`)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Refresh", mock.Anything, "bad").Return("", assert.AnError)

		r := setupRouter(NewHandler(svc))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/refresh",
			strings.NewReader(`{"refresh_token":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing token rejected by binding", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(NewHandler(svc))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/refresh", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Refresh")
	})
}

func TestHandler_GetMe(t *testing.T) {
	svc := new(MockService)
	svc.On("GetByID", mock.Anything, 1).Return(&Guest{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)

	r := setupRouter(NewHandler(svc))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}
