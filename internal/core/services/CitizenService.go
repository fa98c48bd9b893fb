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

	"github.com/google/uuid"
)

const (
	citizenListCacheKey = "citizens:all"
	citizenListCacheTTL = 1 * time.Minute
	citizenLookupTTL    = 15 * time.Minute
)

type CitizenService struct {
	repo   ports.CitizenRepository
	logger ports.LoggerPort
	cache  ports.CachePort
	now    func() time.Time
}

func NewCitizenService(
	repo ports.CitizenRepository,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *CitizenService {
	return &CitizenService{
		repo:   repo,
		logger: logger,
		cache:  cache,
		now:    time.Now,
	}
}

func (cs *CitizenService) Create(ctx context.Context, citizen *domain.Citizen) (*domain.Citizen, error) {
	if err := cs.validateCitizen(citizen); err != nil {
		cs.logger.Info("Citizen validation failed", map[string]interface{}{
			"error":  err.Error(),
			"method": "Create",
		})
		return nil, err
	}

	taken, err := cs.repo.PassportTaken(ctx, citizen.PassportNumber, uuid.Nil)
	if err != nil {
		cs.logger.Error("Failed to check passport uniqueness", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if taken {
		return nil, domain.ErrPassportExists
	}

	// Assigned exactly once, right before first persistence. The unique
	// index on citizens.passport_number is the real guard against the
	// check-then-write race above.
	citizen.UniqueID = domain.NewCitizenUID(cs.now())

	created, err := cs.repo.CreateCitizen(ctx, citizen)
	if err != nil {
		if errors.Is(err, domain.ErrPassportExists) {
			return nil, err
		}
		cs.logger.Error("Failed to create citizen", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	cs.invalidateCaches(created.PassportNumber)

	cs.logger.Info("Citizen created", map[string]interface{}{
		"unique_id": created.UniqueID,
	})
	return created, nil
}

func (cs *CitizenService) Update(ctx context.Context, id uuid.UUID, citizen *domain.Citizen) (*domain.Citizen, error) {
	if err := cs.validateCitizen(citizen); err != nil {
		cs.logger.Info("Citizen validation failed", map[string]interface{}{
			"error":  err.Error(),
			"method": "Update",
		})
		return nil, err
	}

	existing, err := cs.repo.GetCitizenByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := cs.repo.PassportTaken(ctx, citizen.PassportNumber, id)
	if err != nil {
		cs.logger.Error("Failed to check passport uniqueness", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if taken {
		return nil, domain.ErrPassportExists
	}

	citizen.ID = id
	citizen.UniqueID = existing.UniqueID // immutable once set

	updated, err := cs.repo.UpdateCitizen(ctx, citizen)
	if err != nil {
		if errors.Is(err, domain.ErrPassportExists) {
			return nil, err
		}
		cs.logger.Error("Failed to update citizen", map[string]interface{}{
			"id":    id.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	cs.invalidateCaches(existing.PassportNumber)
	if updated.PassportNumber != existing.PassportNumber {
		cs.invalidateCaches(updated.PassportNumber)
	}

	return updated, nil
}

func (cs *CitizenService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := cs.repo.GetCitizenByID(ctx, id)
	if err != nil {
		return err
	}

	if err := cs.repo.DeleteCitizen(ctx, id); err != nil {
		cs.logger.Error("Failed to delete citizen", map[string]interface{}{
			"id":    id.String(),
			"error": err.Error(),
		})
		return err
	}

	cs.invalidateCaches(existing.PassportNumber)

	cs.logger.Info("Citizen deleted", map[string]interface{}{
		"id": id.String(),
	})
	return nil
}

func (cs *CitizenService) List(ctx context.Context) ([]domain.Citizen, error) {
	cachedData, err := cs.cache.Get(citizenListCacheKey)
	if err == nil {
		var cached []domain.Citizen
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			return cached, nil
		}
	}

	citizens, err := cs.repo.ListCitizens(ctx)
	if err != nil {
		cs.logger.Error("Failed to list citizens", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	if data, err := json.Marshal(citizens); err == nil {
		if err := cs.cache.Set(citizenListCacheKey, data, citizenListCacheTTL); err != nil {
			cs.logger.Warn("Failed to cache citizen list", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return citizens, nil
}

func (cs *CitizenService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Citizen, error) {
	citizen, err := cs.repo.GetCitizenByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrCitizenNotFound) {
			cs.logger.Error("Failed to get citizen", map[string]interface{}{
				"id":    id.String(),
				"error": err.Error(),
			})
		}
		return nil, err
	}
	return citizen, nil
}

// LookupByPassport deliberately skips the 9-character length check applied on
// create and update: a malformed number just finds nothing. The caller may be
// anonymous, so only the public projection comes back.
func (cs *CitizenService) LookupByPassport(ctx context.Context, passportNumber string) (*domain.CitizenProfile, error) {
	normalized := domain.NormalizePassport(passportNumber)

	cacheKey := fmt.Sprintf("citizen_passport:%s", normalized)
	cachedData, err := cs.cache.Get(cacheKey)
	if err == nil {
		var cached domain.CitizenProfile
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			return &cached, nil
		}
	}

	citizen, err := cs.repo.GetCitizenByPassport(ctx, normalized)
	if err != nil {
		cs.logger.Error("Failed to look up citizen by passport", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if citizen == nil {
		return nil, domain.ErrCitizenNotFound
	}

	profile := citizen.Profile()
	if data, err := json.Marshal(profile); err == nil {
		if err := cs.cache.Set(cacheKey, data, citizenLookupTTL); err != nil {
			cs.logger.Warn("Failed to cache citizen lookup", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &profile, nil
}

// validateCitizen normalizes in place and applies the field rules shared by
// create and update.
func (cs *CitizenService) validateCitizen(citizen *domain.Citizen) error {
	citizen.FirstName = strings.ToLower(strings.TrimSpace(citizen.FirstName))
	citizen.LastName = strings.ToLower(strings.TrimSpace(citizen.LastName))
	citizen.Nationality = strings.TrimSpace(citizen.Nationality)
	citizen.PassportNumber = domain.NormalizePassport(citizen.PassportNumber)
	citizen.DateOfBirth = strings.TrimSpace(citizen.DateOfBirth)
	citizen.PassportIssueDate = strings.TrimSpace(citizen.PassportIssueDate)

	if citizen.FirstName == "" || citizen.LastName == "" || citizen.DateOfBirth == "" ||
		citizen.Nationality == "" || citizen.PassportNumber == "" || citizen.PassportIssueDate == "" {
		return domain.NewValidationError("please fill in all fields")
	}

	if _, err := time.Parse("2006-01-02", citizen.DateOfBirth); err != nil {
		return domain.NewValidationError("date of birth must be a valid date (YYYY-MM-DD)")
	}
	if _, err := time.Parse("2006-01-02", citizen.PassportIssueDate); err != nil {
		return domain.NewValidationError("passport issue date must be a valid date (YYYY-MM-DD)")
	}

	if !domain.IsValidNationality(citizen.Nationality) {
		return domain.NewValidationError("nationality must be an EU member state")
	}

	if len(citizen.PassportNumber) != domain.PassportNumberLength {
		return domain.NewValidationError("passport number must be exactly 9 characters")
	}

	return nil
}

func (cs *CitizenService) invalidateCaches(passportNumber string) {
	if err := cs.cache.Delete(citizenListCacheKey); err != nil {
		cs.logger.Warn("Failed to invalidate citizen list cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cacheKey := fmt.Sprintf("citizen_passport:%s", passportNumber)
	if err := cs.cache.Delete(cacheKey); err != nil {
		cs.logger.Warn("Failed to invalidate citizen lookup cache", map[string]interface{}{
			"error":    err.Error(),
			"passport": passportNumber,
		})
	}
}
