package domain

import (
	"github.com/google/uuid"
)

// TokenPayload is what a verified session token carries. The role is looked
// up from the user store on every request, never trusted from the token.
type TokenPayload struct {
	UserID uuid.UUID
	Email  string
}

// Principal is the authenticated identity attached to a request after the
// auth middleware resolved the token payload against the user store.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   UserRole
}
