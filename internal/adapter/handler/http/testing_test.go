package http

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Warn(string, map[string]interface{})  {}

type nopMetrics struct{}

func (nopMetrics) IncrementCounter(string, map[string]string)              {}
func (nopMetrics) RecordDuration(string, time.Duration, map[string]string) {}
func (nopMetrics) RecordMetrics(*gin.Context, time.Time)                   {}

var errCacheMiss = errors.New("cache miss")

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

// memUserRepo is an in-memory UserRepository for handler tests.
type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]domain.User{}}
}

func (r *memUserRepo) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return nil, domain.ErrEmailExists
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return user, nil
}

func (r *memUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

// memCitizenRepo is an in-memory CitizenRepository enforcing the same
// uniqueness rules as the Postgres schema.
type memCitizenRepo struct {
	mu          sync.Mutex
	citizens    map[uuid.UUID]domain.Citizen
	lastCreated time.Time
}

func newMemCitizenRepo() *memCitizenRepo {
	return &memCitizenRepo{citizens: map[uuid.UUID]domain.Citizen{}}
}

func (r *memCitizenRepo) CreateCitizen(_ context.Context, citizen *domain.Citizen) (*domain.Citizen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.citizens {
		if existing.PassportNumber == citizen.PassportNumber {
			return nil, domain.ErrPassportExists
		}
	}
	citizen.ID = uuid.New()
	// Strictly increasing timestamps, so list ordering stays deterministic
	// even when two inserts land on the same clock tick.
	now := time.Now()
	if !now.After(r.lastCreated) {
		now = r.lastCreated.Add(time.Millisecond)
	}
	r.lastCreated = now
	citizen.CreatedAt = now
	citizen.UpdatedAt = now
	r.citizens[citizen.ID] = *citizen
	return citizen, nil
}

func (r *memCitizenRepo) GetCitizenByID(_ context.Context, id uuid.UUID) (*domain.Citizen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	citizen, ok := r.citizens[id]
	if !ok {
		return nil, domain.ErrCitizenNotFound
	}
	return &citizen, nil
}

func (r *memCitizenRepo) GetCitizenByPassport(_ context.Context, passportNumber string) (*domain.Citizen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, citizen := range r.citizens {
		if citizen.PassportNumber == passportNumber {
			c := citizen
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCitizenRepo) ListCitizens(_ context.Context) ([]domain.Citizen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]domain.Citizen, 0, len(r.citizens))
	for _, citizen := range r.citizens {
		list = append(list, citizen)
	}
	// Newest first, matching the Postgres repository's ORDER BY.
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *memCitizenRepo) UpdateCitizen(_ context.Context, citizen *domain.Citizen) (*domain.Citizen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.citizens[citizen.ID]
	if !ok {
		return nil, domain.ErrCitizenNotFound
	}
	citizen.CreatedAt = existing.CreatedAt
	citizen.UpdatedAt = time.Now()
	r.citizens[citizen.ID] = *citizen
	return citizen, nil
}

func (r *memCitizenRepo) DeleteCitizen(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.citizens[id]; !ok {
		return domain.ErrCitizenNotFound
	}
	delete(r.citizens, id)
	return nil
}

func (r *memCitizenRepo) PassportTaken(_ context.Context, passportNumber string, excludeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, citizen := range r.citizens {
		if id != excludeID && citizen.PassportNumber == passportNumber {
			return true, nil
		}
	}
	return false, nil
}
