package repository

import (
	"errors"
	"testing"

	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapUniqueViolation(t *testing.T) {
	passportErr := &pq.Error{Code: "23505", Constraint: "citizens_passport_number_idx"}
	assert.ErrorIs(t, mapUniqueViolation(passportErr), domain.ErrPassportExists)

	// A unique_id collision is a different conflict and must not be
	// reported as a duplicate passport.
	uidErr := &pq.Error{Code: "23505", Constraint: "citizens_unique_id_idx"}
	assert.Equal(t, error(uidErr), mapUniqueViolation(uidErr))

	notNullErr := &pq.Error{Code: "23502"}
	assert.Equal(t, error(notNullErr), mapUniqueViolation(notNullErr))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapUniqueViolation(plain))
}
