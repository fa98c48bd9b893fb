package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"

	"github.com/google/uuid"
)

// nopLogger keeps the services quiet in tests.
type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Warn(string, map[string]interface{})  {}

var errCacheMiss = errors.New("cache miss")

// memCache is a map-backed CachePort. TTLs are ignored.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	if !ok {
		return nil, errCacheMiss
	}
	return value, nil
}

func (c *memCache) Set(key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

type mockUserRepo struct {
	createUserFn     func(ctx context.Context, user *domain.User) (*domain.User, error)
	getUserByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	return user, nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(ctx, email)
	}
	return nil, nil
}

type mockCitizenRepo struct {
	createFn        func(ctx context.Context, citizen *domain.Citizen) (*domain.Citizen, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Citizen, error)
	getByPassportFn func(ctx context.Context, passportNumber string) (*domain.Citizen, error)
	listFn          func(ctx context.Context) ([]domain.Citizen, error)
	updateFn        func(ctx context.Context, citizen *domain.Citizen) (*domain.Citizen, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	passportTakenFn func(ctx context.Context, passportNumber string, excludeID uuid.UUID) (bool, error)
}

func (m *mockCitizenRepo) CreateCitizen(ctx context.Context, citizen *domain.Citizen) (*domain.Citizen, error) {
	if m.createFn != nil {
		return m.createFn(ctx, citizen)
	}
	citizen.ID = uuid.New()
	citizen.CreatedAt = time.Now()
	citizen.UpdatedAt = citizen.CreatedAt
	return citizen, nil
}

func (m *mockCitizenRepo) GetCitizenByID(ctx context.Context, id uuid.UUID) (*domain.Citizen, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrCitizenNotFound
}

func (m *mockCitizenRepo) GetCitizenByPassport(ctx context.Context, passportNumber string) (*domain.Citizen, error) {
	if m.getByPassportFn != nil {
		return m.getByPassportFn(ctx, passportNumber)
	}
	return nil, nil
}

func (m *mockCitizenRepo) ListCitizens(ctx context.Context) ([]domain.Citizen, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []domain.Citizen{}, nil
}

func (m *mockCitizenRepo) UpdateCitizen(ctx context.Context, citizen *domain.Citizen) (*domain.Citizen, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, citizen)
	}
	return citizen, nil
}

func (m *mockCitizenRepo) DeleteCitizen(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCitizenRepo) PassportTaken(ctx context.Context, passportNumber string, excludeID uuid.UUID) (bool, error) {
	if m.passportTakenFn != nil {
		return m.passportTakenFn(ctx, passportNumber, excludeID)
	}
	return false, nil
}

type fakeTokenService struct{}

func (fakeTokenService) CreateToken(user *domain.User) (string, error) {
	return "token-for-" + user.Email, nil
}

func (fakeTokenService) VerifyToken(string) (domain.TokenPayload, error) {
	return domain.TokenPayload{}, errors.New("not implemented")
}

func (fakeTokenService) ExtractToken(string) (string, error) {
	return "", errors.New("not implemented")
}
