package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// List returns all users ordered by name, for the admin dashboard.
	List(ctx context.Context) ([]User, error)

	UpdateRole(ctx context.Context, id string, role Role) error

	// SetExtraDays overwrites the leave-day balance (admin correction).
	SetExtraDays(ctx context.Context, id string, extraDays float64) (User, error)

	// AddExtraDays increments the leave-day balance atomically and returns
	// the updated user. Used by the checkout accrual rule.
	AddExtraDays(ctx context.Context, id string, delta float64) (User, error)

	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
