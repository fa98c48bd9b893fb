package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"
	"github.com/pepiapp/citizen_registry_microservice/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the registry's policy of a deliberately slow hash.
const bcryptCost = 12

const userEmailCacheTTL = 10 * time.Minute

type AuthService struct {
	userRepo     ports.UserRepository
	tokenService ports.TokenService
	logger       ports.LoggerPort
	validate     *validator.Validate
	cache        ports.CachePort
}

func NewAuthService(
	userRepo ports.UserRepository,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
		validate:     validate,
		cache:        cache,
	}
}

// HashPassword is called explicitly whenever a plaintext secret is newly set,
// never on unrelated saves. Each call salts independently.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. A
// mismatch is a false, not an error.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (s *AuthService) Register(ctx context.Context, user *domain.User) (string, *domain.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Role == "" {
		user.Role = domain.RoleCitizen
	}
	if user.Role != domain.RoleCitizen && user.Role != domain.Employee {
		return "", nil, domain.NewValidationError("invalid role")
	}

	if err := s.validate.Struct(user); err != nil {
		s.logger.Error("Validation failed", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return "", nil, domain.NewValidationError(fmt.Sprintf("validation failed: %s", err.Error()))
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Error("Failed to check existing email", map[string]interface{}{
			"email": user.Email,
			"error": err.Error(),
		})
		return "", nil, err
	}
	if existing != nil {
		return "", nil, domain.ErrEmailExists
	}

	hashedPassword, err := HashPassword(user.Password)
	if err != nil {
		s.logger.Error("Error during hashing", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return "", nil, err
	}
	user.Password = hashedPassword

	// The unique index on lower(email) is the real guarantee; the lookup
	// above only gives a friendlier error under normal operation.
	user, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create user in database", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return "", nil, err
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Failed to create token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return "", nil, err
	}

	userResponse := *user
	userResponse.Password = ""
	return token, &userResponse, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	cacheKey := fmt.Sprintf("user_email:%s", email)
	cachedData, err := s.cache.Get(cacheKey)
	var user *domain.User

	if err == nil {
		var cachedUser domain.User
		if err := json.Unmarshal(cachedData, &cachedUser); err == nil {
			user = &cachedUser
			s.logger.Debug("User found in email cache", map[string]interface{}{
				"email": email,
			})
		}
	}

	if user == nil {
		user, err = s.userRepo.GetUserByEmail(ctx, email)
		if err != nil {
			s.logger.Error("Failed to get user by email", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
			return "", nil, domain.ErrInvalidCredentials
		}

		if user == nil {
			return "", nil, domain.ErrInvalidCredentials
		}

		userData, err := json.Marshal(user)
		if err != nil {
			s.logger.Warn("Failed to marshal user for email cache", map[string]interface{}{
				"error": err.Error(),
				"email": email,
			})
		} else {
			if err := s.cache.Set(cacheKey, userData, userEmailCacheTTL); err != nil {
				s.logger.Warn("Failed to cache user by email", map[string]interface{}{
					"error": err.Error(),
					"email": email,
				})
			}
		}
	}

	if !VerifyPassword(password, user.Password) {
		s.logger.Info("Invalid password attempt", map[string]interface{}{
			"email": email,
		})
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Failed to create token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return "", nil, err
	}

	userResponse := *user
	userResponse.Password = ""
	return token, &userResponse, nil
}

func (s *AuthService) Me(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error("Failed to get user", map[string]interface{}{
			"id":    id.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	userResponse := *user
	userResponse.Password = ""
	return &userResponse, nil
}
