package checkin

import (
	"context"
	"time"
)

// CheckInRepository defines data access for attendance records. The
// (user_id, date, period) uniqueness and the checkout-once guarantee are
// enforced here, at the storage boundary, so concurrent requests cannot
// produce a double record or a double credit.
type CheckInRepository interface {
	// Create inserts a new record. A unique-constraint violation on
	// (user_id, date, period) is returned as ErrAlreadyCheckedIn.
	Create(ctx context.Context, record CheckIn) (CheckIn, error)

	// GetByID retrieves a record by primary key.
	GetByID(ctx context.Context, id string) (CheckIn, error)

	// GetByUserDateAndPeriod retrieves the record for one key, or nil when
	// no record exists.
	GetByUserDateAndPeriod(ctx context.Context, userID, date string, period Period) (*CheckIn, error)

	// CompleteCheckOut transitions a record to checked-out. The update is
	// conditional on checked_out_at still being NULL; when no row matches
	// the update affects nothing and ErrAlreadyCheckedOut or
	// ErrNotCheckedIn is returned depending on whether the record exists.
	CompleteCheckOut(ctx context.Context, userID, date string, period Period, record CheckOutUpdate) (CheckIn, error)

	// ListByUserAndDate returns a user's records for one date.
	ListByUserAndDate(ctx context.Context, userID, date string) ([]CheckIn, error)

	// ListByUserAndMonth returns a user's records for a year-month,
	// ordered date descending, morning before afternoon.
	ListByUserAndMonth(ctx context.Context, userID string, year, month int) ([]CheckIn, error)

	// ListByDate and ListByMonth span all users (admin views).
	ListByDate(ctx context.Context, date string) ([]CheckIn, error)
	ListByMonth(ctx context.Context, year, month int) ([]CheckIn, error)

	// Delete removes a record in any state (admin override only).
	Delete(ctx context.Context, id string) error
}

// CheckOutUpdate carries the values persisted by CompleteCheckOut.
type CheckOutUpdate struct {
	CheckedOutAt time.Time
	WorkMinutes  int
	EarnedExtra  float64
}
