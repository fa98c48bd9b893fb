package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"
	"github.com/pepiapp/citizen_registry_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService ports.AuthService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

func NewAuthHandler(
	authService ports.AuthService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
		metrics:     metrics,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" example:"Maria Papadopoulou"`
	Email    string `json:"email" example:"maria@example.com"`
	Password string `json:"password" example:"secret123"`
	Role     string `json:"role,omitempty" example:"employee"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"maria@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

type UserInfo struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

func toUserInfo(user *domain.User) UserInfo {
	return UserInfo{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// @Summary Register a new user
// @Description Creates an account and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse "Account created"
// @Failure 400 {object} errorResponse "Missing fields, invalid data or duplicate email"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in registration", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		newErrorResponse(c, http.StatusBadRequest, "Please fill in name, email and password")
		return
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
	}

	token, createdUser, err := h.authService.Register(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			h.logger.Info("Registration failed: duplicate email", map[string]interface{}{
				"email": req.Email,
			})
			newErrorResponse(c, http.StatusBadRequest, "Email already exists. Please use another email.")
			return
		}
		if domain.IsValidationError(err) {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}

		h.logger.Error("Failed to register user", map[string]interface{}{
			"error": err.Error(),
			"email": req.Email,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	h.logger.Info("User registered successfully", map[string]interface{}{
		"email":   req.Email,
		"user_id": createdUser.ID,
	})

	c.JSON(http.StatusCreated, AuthResponse{
		Message: "Registration completed successfully!",
		Token:   token,
		User:    toUserInfo(createdUser),
	})
}

// @Summary Log in
// @Description Authenticates by email and password and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login data"
// @Success 200 {object} AuthResponse "Logged in"
// @Failure 400 {object} errorResponse "Missing fields"
// @Failure 401 {object} errorResponse "Wrong email or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Please fill in email and password")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.logger.Info("Login failed", map[string]interface{}{
				"email": req.Email,
			})
			newErrorResponse(c, http.StatusUnauthorized, "Wrong email or password")
			return
		}

		h.logger.Error("Login error", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	h.logger.Info("User logged in successfully", map[string]interface{}{
		"email":   req.Email,
		"user_id": user.ID,
	})

	c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful!",
		Token:   token,
		User:    toUserInfo(user),
	})
}

// @Summary Current user
// @Description Returns the profile of the authenticated user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} successResponse{data=UserInfo} "Current user"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Failure 404 {object} errorResponse "Account no longer exists"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	principal, ok := getPrincipal(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.authService.Me(c.Request.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			newErrorResponse(c, http.StatusNotFound, "User not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	newSuccessResponse(c, http.StatusOK, "", toUserInfo(user))
}

// @Summary Verify token
// @Description Confirms the presented token is valid and echoes its claims
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} successResponse "Token is valid"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /api/auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	principal, ok := getPrincipal(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Token is valid", map[string]interface{}{
		"id":    principal.UserID,
		"email": principal.Email,
	})
}
