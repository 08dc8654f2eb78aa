package settings

import (
	"time"

	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
)

// DefaultWorkDays is used while the user has not picked a work-day set:
// Monday through Friday (0=Sunday).
var DefaultWorkDays = []int{1, 2, 3, 4, 5}

// Location is a per-period geofence target.
type Location struct {
	Name   string
	Lat    float64
	Lng    float64
	Radius int // meters, > 0 when the location is set
}

// Settings is the per-user work schedule: the scheduled weekday set and one
// target location per period. A user whose periods are not both configured
// is still in onboarding.
type Settings struct {
	ID        string
	UserID    string
	WorkDays  []int
	Morning   *Location
	Afternoon *Location
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorkDay reports whether the date's weekday is in the configured set.
func (s *Settings) IsWorkDay(date time.Time) bool {
	workDays := s.WorkDays
	if len(workDays) == 0 {
		workDays = DefaultWorkDays
	}
	weekday := int(date.Weekday())
	for _, d := range workDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// LocationFor returns the geofence target for a period, or nil when unset.
func (s *Settings) LocationFor(period checkin.Period) *Location {
	switch period {
	case checkin.PeriodMorning:
		return s.Morning
	case checkin.PeriodAfternoon:
		return s.Afternoon
	}
	return nil
}

// NeedsOnboarding reports whether the user still has to configure both
// period locations. A single configured period does not count.
func (s *Settings) NeedsOnboarding() bool {
	return s.Morning == nil || s.Afternoon == nil
}
