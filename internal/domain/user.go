package domain

import "time"

type UserRole string

const (
	RoleSuperAdmin   UserRole = "super_admin"
	RoleCompanyAdmin UserRole = "company_admin"
	RoleMember       UserRole = "member"
	RoleCustomer     UserRole = "customer"
)

// ValidUserRole reports whether the given string is a known role.
func ValidUserRole(r string) bool {
	switch UserRole(r) {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleMember, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CompanyID    *int64    `json:"company_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
