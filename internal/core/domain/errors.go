package domain

import "errors"

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrPassportExists     = errors.New("passport number already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrCitizenNotFound    = errors.New("citizen not found")
)

// ValidationError carries a message safe to return to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
