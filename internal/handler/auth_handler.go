package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/middleware"
	"github.com/schoolhub/sims-backend/internal/service"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Verifies credentials and returns an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Credentials"
// @Success 200 {object} common.APIResponse
// @Failure 401 {object} common.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	tokens, user, err := h.service.Login(&req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"tokens": tokens, "user": user})
}

// Refresh handles POST /api/v1/auth/refresh
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.TokenPair}
// @Failure 401 {object} common.APIResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	tokens, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, tokens)
}

// Register handles POST /api/v1/auth/register
// @Summary Create an account
// @Description Creates a user account. Admin only.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterUserRequest true "Account details"
// @Success 201 {object} common.APIResponse{data=domain.UserResponse}
// @Failure 409 {object} common.APIResponse
// @Security BearerAuth
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	user, err := h.service.Register(&req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, user)
}

// Me handles GET /api/v1/auth/me
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.UserResponse}
// @Failure 401 {object} common.APIResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.GetMe(middleware.GetUserID(c))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, user)
}
