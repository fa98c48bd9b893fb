package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleCitizen UserRole = "citizen"
	Employee UserRole = "employee"
)

// swagger:model domain.User
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password,omitempty" validate:"required,min=6"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
