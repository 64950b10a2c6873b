package user

import "time"

// Role enum
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleEmployee   Role = "EMPLOYEE"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	// CompanyID is the tenant key. For admins it equals their own user
	// ID; for employees it points at the admin that created them.
	CompanyID string
	IsLocked  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
