package http

import (
	"errors"
	"strings"
	"time"

	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"
	"github.com/pepiapp/citizen_registry_microservice/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("no token provided")
)

type JWTTokenService struct {
	secretKey  []byte
	expiration time.Duration
	logger     ports.LoggerPort
}

func NewJWTTokenService(secretKey string, durationStr string, logger ports.LoggerPort) *JWTTokenService {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		logger.Warn("Invalid token duration, using default 168h", map[string]interface{}{
			"duration": durationStr,
		})
		duration = 168 * time.Hour
	}

	return &JWTTokenService{
		secretKey:  []byte(secretKey),
		expiration: duration,
		logger:     logger,
	}
}

func (j *JWTTokenService) CreateToken(user *domain.User) (string, error) {
	issuedAt := time.Now()
	expiredAt := issuedAt.Add(j.expiration)

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"iat":     issuedAt.Unix(),
		"exp":     expiredAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// VerifyToken collapses malformed, badly signed and expired tokens into the
// single ErrInvalidToken so callers cannot tell which factor failed.
func (j *JWTTokenService) VerifyToken(token string) (domain.TokenPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return j.secretKey, nil
	})
	if err != nil {
		j.logger.Debug("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return domain.TokenPayload{}, ErrInvalidToken
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return domain.TokenPayload{}, ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return domain.TokenPayload{}, ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return domain.TokenPayload{}, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok {
		return domain.TokenPayload{}, ErrInvalidToken
	}

	return domain.TokenPayload{
		UserID: userID,
		Email:  email,
	}, nil
}

// ExtractToken requires the literal "Bearer " prefix and returns what follows.
func (j *JWTTokenService) ExtractToken(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrMissingToken
	}
	return authHeader[len(bearerPrefix):], nil
}
