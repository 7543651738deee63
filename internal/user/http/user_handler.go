// Package http provides HTTP handlers for user-related operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/users/internal/httputil"
	"github.com/allisson/users/internal/user/domain"
	"github.com/allisson/users/internal/user/http/dto"
	"github.com/allisson/users/internal/user/usecase"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userUseCase usecase.UseCase
	baseURL     string
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler. baseURL overrides the host used
// in pagination links; leave it empty to derive links from the request.
func NewUserHandler(userUseCase usecase.UseCase, baseURL string, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		baseURL:     baseURL,
		logger:      logger,
	}
}

// ListHandler returns one page of users.
// GET /api/user?fields=&offset=&limit=
// Returns 200 OK with the projected items and, when more results exist, an
// absolute nextPage URL reusing the request path.
func (h *UserHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	requested := httputil.ParseFields(c)
	fields, err := domain.ResolveFields(requested)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	result, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapUsersToListResponse(result.Items, fields)
	if result.NextPage != nil {
		response.NextPage = httputil.NextPageURL(
			c, h.baseURL, result.NextPage.Offset, result.NextPage.Limit, requested,
		)
	}

	c.JSON(http.StatusOK, response)
}

// GetHandler retrieves a single user by id.
// GET /api/user/:id?fields=
// Returns 200 OK with the projected user or 404 when the id is unknown.
func (h *UserHandler) GetHandler(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	fields, err := domain.ResolveFields(httputil.ParseFields(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user, fields))
}

// CreateHandler registers a new user.
// POST /api/user
// Returns 200 OK with the created user, password excluded. A duplicate email
// or username yields 400 naming the conflicting field.
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Create(c.Request.Context(), dto.ToCreateUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user, domain.AllowedFields))
}

// UpdateHandler partially updates an existing user.
// PUT /api/user/:id
// Only the supplied payload fields change; absent fields keep their value.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), id, dto.ToUpdateUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user, domain.AllowedFields))
}

// DeleteHandler removes a user by id.
// DELETE /api/user/:id
// Returns 204 No Content, or 404 when no user with that id exists.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	deleted, err := h.userUseCase.Delete(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	if !deleted {
		httputil.HandleErrorGin(c, domain.ErrUserNotFound, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// LoginHandler verifies a login/password pair.
// POST /api/user/login
// Returns 200 OK with the authenticated user on a match, 401 otherwise.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.VerifyLogin(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user, domain.AllowedFields))
}

// parseID extracts and validates the id path parameter.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id parameter: must be a positive integer")
	}
	return id, nil
}
