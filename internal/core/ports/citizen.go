package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"
)

type CitizenRepository interface {
	CreateCitizen(ctx context.Context, citizen *domain.Citizen) (*domain.Citizen, error)
	GetCitizenByID(ctx context.Context, id uuid.UUID) (*domain.Citizen, error)
	// GetCitizenByPassport returns (nil, nil) when no record matches.
	GetCitizenByPassport(ctx context.Context, passportNumber string) (*domain.Citizen, error)
	ListCitizens(ctx context.Context) ([]domain.Citizen, error)
	UpdateCitizen(ctx context.Context, citizen *domain.Citizen) (*domain.Citizen, error)
	DeleteCitizen(ctx context.Context, id uuid.UUID) error
	// PassportTaken reports whether another record already holds the
	// normalized passport number. excludeID is uuid.Nil on create.
	PassportTaken(ctx context.Context, passportNumber string, excludeID uuid.UUID) (bool, error)
}

type CitizenService interface {
	Create(ctx context.Context, citizen *domain.Citizen) (*domain.Citizen, error)
	Update(ctx context.Context, id uuid.UUID, citizen *domain.Citizen) (*domain.Citizen, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Citizen, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Citizen, error)
	LookupByPassport(ctx context.Context, passportNumber string) (*domain.CitizenProfile, error)
}
