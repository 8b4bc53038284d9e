package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AdminID is the fixed identifier of the canonical administrator account
// seeded on initialization.
const AdminID = "admin-1"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLogin    time.Time `json:"lastLogin"`
	CreatedBy    string    `json:"createdBy,omitempty"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
