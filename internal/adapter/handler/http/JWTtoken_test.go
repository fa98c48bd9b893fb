package http

import (
	"testing"
	"time"

	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Name:  "Maria",
		Email: "maria@x.com",
		Role:  domain.Employee,
	}
}

func TestCreateToken_RoundTrip(t *testing.T) {
	svc := NewJWTTokenService("test-signing-key", "1h", nopLogger{})
	user := testUser()

	token, err := svc.CreateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, payload.UserID)
	assert.Equal(t, user.Email, payload.Email)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := NewJWTTokenService("test-signing-key", "-1h", nopLogger{})

	token, err := svc.CreateToken(testUser())
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongKey(t *testing.T) {
	issuer := NewJWTTokenService("key-one", "1h", nopLogger{})
	verifier := NewJWTTokenService("key-two", "1h", nopLogger{})

	token, err := issuer.CreateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Malformed(t *testing.T) {
	svc := NewJWTTokenService("test-signing-key", "1h", nopLogger{})

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestNewJWTTokenService_BadDurationFallsBack(t *testing.T) {
	svc := NewJWTTokenService("test-signing-key", "not-a-duration", nopLogger{})
	assert.Equal(t, 168*time.Hour, svc.expiration)
}

func TestExtractToken(t *testing.T) {
	svc := NewJWTTokenService("test-signing-key", "1h", nopLogger{})

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: ErrMissingToken},
		{name: "missing prefix", header: "abc.def.ghi", wantErr: ErrMissingToken},
		{name: "lowercase scheme rejected", header: "bearer abc.def.ghi", wantErr: ErrMissingToken},
		{name: "basic scheme rejected", header: "Basic dXNlcjpwYXNz", wantErr: ErrMissingToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ExtractToken(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
