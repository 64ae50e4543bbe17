package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoleUser is the server-assigned default role for new users.
const RoleUser = "user"

// User is an account record keyed by email. Creation is idempotent:
// registering an email that already exists returns the stored record
// untouched.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}
