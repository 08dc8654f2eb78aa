package checkin

import (
	"errors"
	"fmt"
)

var (
	// Check-in errors
	ErrLocationNotConfigured = errors.New("no target location configured for this period")
	ErrPriorPeriodOpen       = errors.New("morning period is still open, check out first")
	ErrAlreadyCheckedIn      = errors.New("already checked in for this period")
	ErrLocationUnavailable   = errors.New("current location could not be determined")

	// Check-out errors
	ErrNotCheckedIn      = errors.New("no open check-in for this period")
	ErrAlreadyCheckedOut = errors.New("already checked out for this period")

	// General errors
	ErrCheckInNotFound = errors.New("check-in record not found")
	ErrStorageConflict = errors.New("conflicting concurrent update detected")
)

// OutOfRangeError is returned when the reported position falls outside the
// target geofence. Distance is the measured distance in meters so the caller
// can tell the user how far off they are.
type OutOfRangeError struct {
	LocationName string
	Distance     float64
	Radius       int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("outside the allowed radius of %s: %.0fm away, %dm allowed",
		e.LocationName, e.Distance, e.Radius)
}
