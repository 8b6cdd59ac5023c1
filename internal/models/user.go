package models

import "time"

// UserRole represents the fixed set of back-office roles.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SuperAdmin"
	RoleAdmin      UserRole = "Admin"
	RoleMentor     UserRole = "Mentor"
	RoleStudent    UserRole = "Student"
)

// User represents a back-office user as exposed by the core API.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Contact   string    `json:"contact"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// UserCreationRequest is the payload for registering a new user.
type UserCreationRequest struct {
	Name     string   `json:"name" validate:"required"`
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password" validate:"required,min=6"`
	Role     UserRole `json:"role" validate:"required,oneof=SuperAdmin Admin Mentor Student"`
	Contact  string   `json:"contact" validate:"required"`
}
