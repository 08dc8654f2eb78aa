package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devstudio/checkin-backend-go/internal/domain/auth"
	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/devstudio/checkin-backend-go/internal/domain/settings"
	"github.com/devstudio/checkin-backend-go/internal/domain/user"
	"github.com/devstudio/checkin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence rejection carries the measured distance for the client.
	var outOfRange *checkin.OutOfRangeError
	if errors.As(err, &outOfRange) {
		BadRequest(w, outOfRange.Error(), map[string]string{
			"location_name":   outOfRange.LocationName,
			"distance_meters": strconv.FormatFloat(outOfRange.Distance, 'f', 0, 64),
			"radius_meters":   strconv.Itoa(outOfRange.Radius),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailAlreadyExists), errors.Is(err, user.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Check-in conflicts: the record key is already in its target state.
	case errors.Is(err, checkin.ErrAlreadyCheckedIn),
		errors.Is(err, checkin.ErrAlreadyCheckedOut),
		errors.Is(err, checkin.ErrPriorPeriodOpen),
		errors.Is(err, checkin.ErrStorageConflict):
		Conflict(w, err.Error())

	// Check-in preconditions the caller can fix.
	case errors.Is(err, checkin.ErrLocationNotConfigured),
		errors.Is(err, checkin.ErrLocationUnavailable),
		errors.Is(err, checkin.ErrNotCheckedIn):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, checkin.ErrCheckInNotFound):
		NotFound(w, "Check-in record not found")

	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
