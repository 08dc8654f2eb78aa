package checkin

import "time"

// Period is one of the two daily attendance windows.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// Bonus leave accrual: working at least BonusThresholdMinutes during a
// non-scheduled day's period earns BonusLeaveDays.
const (
	BonusThresholdMinutes = 180
	BonusLeaveDays        = 0.5
)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	return p == PeriodMorning || p == PeriodAfternoon
}

// CheckIn is one attendance event for one (user, calendar date, period).
// At most one record exists per key; the database enforces this with a
// unique constraint. The record is created by check-in, mutated exactly once
// by checkout, and only deleted through the admin override.
type CheckIn struct {
	ID           string
	UserID       string
	Date         string // calendar day, user-local, "2006-01-02"
	Period       Period
	LocationName string
	Lat          float64
	Lng          float64
	CheckedAt    time.Time
	CheckedOutAt *time.Time
	// WorkMinutes and EarnedExtra are set at checkout and immutable after.
	WorkMinutes *int
	IsExtraDay  bool
	EarnedExtra float64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields for admin views
	UserName *string
}

// CheckedOut reports whether the record has reached its terminal state.
func (c *CheckIn) CheckedOut() bool {
	return c.CheckedOutAt != nil
}
