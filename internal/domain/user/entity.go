package user

import "time"

type Role string

const (
	RoleUser  Role = "user"  // Regular employee, subject to geofencing
	RoleAdmin Role = "admin" // Operator - may record attendance for anyone
)

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash *string
	Role         Role
	// ExtraDays is the accrued bonus leave-day balance, in 0.5-day steps.
	ExtraDays       float64
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks whether the user may use the operator endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
