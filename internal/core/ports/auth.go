package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"
)

type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (domain.TokenPayload, error)
	ExtractToken(authHeader string) (string, error)
}

type AuthService interface {
	Register(ctx context.Context, user *domain.User) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Me(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
