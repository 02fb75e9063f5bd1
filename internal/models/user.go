package models

import "time"

// Role represents user roles in the system.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleMechanic  Role = "mechanic"
	RoleReception Role = "reception"
	RoleWarehouse Role = "warehouse"
)

// User represents a staff account. PasswordHash is persisted to the
// users collection but must never be sent to clients; use Public().
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"passwordHash,omitempty"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Public returns a copy of the user safe to return from the API.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login response.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Claims represents JWT claims.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Exp      int64  `json:"exp"`
}

// IsValidRole checks if a role is valid.
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleMechanic, RoleReception, RoleWarehouse:
		return true
	default:
		return false
	}
}
