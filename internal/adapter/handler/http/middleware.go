package http

import (
	"net/http"

	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"
	"github.com/pepiapp/citizen_registry_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationPayloadKey = "authorization_payload"
)

// AuthMiddleware is the mandatory gate: header, token, then a live user
// lookup so a deleted account cannot keep using an old token. The resolved
// principal carries the role straight from the store.
func AuthMiddleware(token ports.TokenService, users ports.UserRepository, logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeaderKey)
		if authHeader == "" {
			newErrorResponse(c, http.StatusUnauthorized, "Access token required")
			return
		}

		principal, ok := resolvePrincipal(c, authHeader, token, users, logger)
		if !ok {
			return
		}

		c.Set(authorizationPayloadKey, principal)
		c.Next()
	}
}

// OptionalAuthMiddleware runs the same chain but swallows every failure and
// lets the request continue anonymously.
func OptionalAuthMiddleware(token ports.TokenService, users ports.UserRepository, logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeaderKey)
		if authHeader == "" {
			c.Next()
			return
		}

		accessToken, err := token.ExtractToken(authHeader)
		if err != nil {
			c.Next()
			return
		}

		payload, err := token.VerifyToken(accessToken)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), payload.UserID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set(authorizationPayloadKey, &domain.Principal{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		})
		c.Next()
	}
}

// EmployeeMiddleware must run after AuthMiddleware.
func EmployeeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := getPrincipal(c)
		if !ok {
			newErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		if principal.Role != domain.Employee {
			newErrorResponse(c, http.StatusForbidden, "Employee access required")
			return
		}

		c.Next()
	}
}

func resolvePrincipal(
	c *gin.Context,
	authHeader string,
	token ports.TokenService,
	users ports.UserRepository,
	logger ports.LoggerPort,
) (*domain.Principal, bool) {
	accessToken, err := token.ExtractToken(authHeader)
	if err != nil {
		newErrorResponse(c, http.StatusForbidden, "Invalid or expired token")
		return nil, false
	}

	payload, err := token.VerifyToken(accessToken)
	if err != nil {
		newErrorResponse(c, http.StatusForbidden, "Invalid or expired token")
		return nil, false
	}

	user, err := users.GetUserByID(c.Request.Context(), payload.UserID)
	if err != nil || user == nil {
		logger.Warn("Token resolved to unknown user", map[string]interface{}{
			"user_id": payload.UserID.String(),
		})
		newErrorResponse(c, http.StatusForbidden, "User not found")
		return nil, false
	}

	return &domain.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, true
}
