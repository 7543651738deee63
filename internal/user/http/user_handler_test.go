package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/users/internal/user/domain"
	"github.com/allisson/users/internal/user/http/dto"
	"github.com/allisson/users/internal/user/usecase"
)

// MockUserUseCase is a mock implementation of usecase.UseCase.
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) List(ctx context.Context, offset, limit int) (*domain.PageResult, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PageResult), args.Error(1)
}

func (m *MockUserUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Create(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Update(
	ctx context.Context,
	id int64,
	input usecase.UpdateUserInput,
) (*domain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserUseCase) VerifyLogin(ctx context.Context, login, password string) (*domain.User, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ usecase.UseCase = (*MockUserUseCase)(nil)

// setupTestHandler creates a test handler with mocked dependencies.
func setupTestHandler(t *testing.T) (*UserHandler, *MockUserUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &MockUserUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewUserHandler(mockUseCase, "", logger)

	return handler, mockUseCase
}

func createTestContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, target, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func testUser(id int64) *domain.User {
	dob := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:       id,
		Email:    "jane@example.com",
		Username: "janedoe",
		Password: "stored-hash",
		DOB:      &dob,
		Gender:   "female",
		Name:     &domain.Name{Title: "ms", First: "Jane", Last: "Doe"},
	}
}

func TestUserHandler_ListHandler(t *testing.T) {
	t.Run("Success_LastPage", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		result := &domain.PageResult{Items: []*domain.User{testUser(1), testUser(2)}}
		mockUseCase.On("List", mock.Anything, 0, 10).Return(result, nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/user", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Items    []map[string]any `json:"items"`
			NextPage string           `json:"nextPage"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Items, 2)
		assert.Empty(t, response.NextPage)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_WithNextPage", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		result := &domain.PageResult{
			Items:    []*domain.User{testUser(1)},
			NextPage: &domain.Page{Offset: 10, Limit: 10},
		}
		mockUseCase.On("List", mock.Anything, 0, 10).Return(result, nil).Once()

		c, w := createTestContext(http.MethodGet, "http://api.example.com/api/user?fields=id,email", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Items    []map[string]any `json:"items"`
			NextPage string           `json:"nextPage"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(
			t,
			"http://api.example.com/api/user?fields=id%2Cemail&limit=10&offset=10",
			response.NextPage,
		)

		// The projection narrows each item to the requested fields
		require.Len(t, response.Items, 1)
		assert.Len(t, response.Items[0], 2)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidLimit", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/api/user?limit=5", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
	})

	t.Run("Error_UnknownField", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/api/user?fields=password", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
	})

	t.Run("Error_UseCaseFailure", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("List", mock.Anything, 0, 10).
			Return(nil, errors.New("connection refused")).
			Once()

		c, w := createTestContext(http.MethodGet, "/api/user", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal_error")
		assert.NotContains(t, w.Body.String(), "connection refused")

		mockUseCase.AssertExpectations(t)
	})
}

func TestUserHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Get", mock.Anything, int64(7)).Return(testUser(7), nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/user/7", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "jane@example.com", response["email"])
		_, hasPassword := response["password"]
		assert.False(t, hasPassword)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_WithProjection", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Get", mock.Anything, int64(7)).Return(testUser(7), nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/user/7?fields=id,username", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 2)
		assert.Equal(t, "janedoe", response["username"])

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/api/user/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Get", mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/api/user/99", nil)
		c.Params = gin.Params{{Key: "id", Value: "99"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not_found")

		mockUseCase.AssertExpectations(t)
	})
}

func TestUserHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.CreateUserRequest{
			Email:    "jane@example.com",
			Username: "janedoe",
			Password: "SecurePass123!",
		}

		mockUseCase.On("Create", mock.Anything, mock.AnythingOfType("usecase.CreateUserInput")).
			Return(testUser(7), nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/user", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(7), response["id"])
		_, hasPassword := response["password"]
		assert.False(t, hasPassword)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/user", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
	})

	t.Run("Error_ValidationFailed", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.CreateUserRequest{
			Email:    "not-an-email",
			Username: "janedoe",
			Password: "SecurePass123!",
		}

		c, w := createTestContext(http.MethodPost, "/api/user", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.CreateUserRequest{
			Email:    "jane@example.com",
			Username: "janedoe",
			Password: "SecurePass123!",
		}

		mockUseCase.On("Create", mock.Anything, mock.AnythingOfType("usecase.CreateUserInput")).
			Return(nil, domain.NewUniqueConstraintError("email")).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/user", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "unique_constraint", response["error"])
		assert.Equal(t, "email", response["field"])

		mockUseCase.AssertExpectations(t)
	})
}

func TestUserHandler_UpdateHandler(t *testing.T) {
	t.Run("Success_PartialPayload", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		email := "new@example.com"
		request := dto.UpdateUserRequest{Email: &email}

		updated := testUser(7)
		updated.Email = email

		mockUseCase.On("Update", mock.Anything, int64(7), mock.AnythingOfType("usecase.UpdateUserInput")).
			Return(updated, nil).
			Once()

		c, w := createTestContext(http.MethodPut, "/api/user/7", request)
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "new@example.com", response["email"])

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		email := "new@example.com"
		request := dto.UpdateUserRequest{Email: &email}

		mockUseCase.On("Update", mock.Anything, int64(99), mock.AnythingOfType("usecase.UpdateUserInput")).
			Return(nil, domain.ErrUserNotFound).
			Once()

		c, w := createTestContext(http.MethodPut, "/api/user/99", request)
		c.Params = gin.Params{{Key: "id", Value: "99"}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPut, "/api/user/0", nil)
		c.Params = gin.Params{{Key: "id", Value: "0"}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, int64(7)).Return(true, nil).Once()

		c, w := createTestContext(http.MethodDelete, "/api/user/7", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, int64(99)).Return(false, nil).Once()

		c, w := createTestContext(http.MethodDelete, "/api/user/99", nil)
		c.Params = gin.Params{{Key: "id", Value: "99"}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not_found")

		mockUseCase.AssertExpectations(t)
	})
}

func TestUserHandler_LoginHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.LoginRequest{Login: "janedoe", Password: "SecurePass123!"}

		mockUseCase.On("VerifyLogin", mock.Anything, "janedoe", "SecurePass123!").
			Return(testUser(7), nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/user/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "janedoe", response["username"])
		_, hasPassword := response["password"]
		assert.False(t, hasPassword)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.LoginRequest{Login: "janedoe", Password: "WrongPass!"}

		mockUseCase.On("VerifyLogin", mock.Anything, "janedoe", "WrongPass!").
			Return(nil, domain.ErrInvalidLogin).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/user/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_login")

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingLogin", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.LoginRequest{Password: "SecurePass123!"}

		c, w := createTestContext(http.MethodPost, "/api/user/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
	})
}
