package admin

import (
	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/devstudio/checkin-backend-go/internal/domain/user"
	"github.com/devstudio/checkin-backend-go/internal/pkg/validator"
)

// CheckInRequest records attendance on behalf of a target user. The
// geofence does not apply; coordinates are optional and default to the
// target location when one is configured.
type CheckInRequest struct {
	UserID       string         `json:"user_id"`
	Date         string         `json:"date"`
	Period       checkin.Period `json:"period"`
	LocationName string         `json:"location_name"`
	Lat          *float64       `json:"lat"`
	Lng          *float64       `json:"lng"`
	// CheckedAt backfills a past time, RFC3339. Empty means now.
	CheckedAt string `json:"checked_at"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !r.Period.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be morning or afternoon",
		})
	}

	if r.Lat != nil && !validator.IsValidLatitude(*r.Lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "lat must be between -90 and 90",
		})
	}

	if r.Lng != nil && !validator.IsValidLongitude(*r.Lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "lng",
			Message: "lng must be between -180 and 180",
		})
	}

	if r.CheckedAt != "" {
		if _, ok := validator.IsValidDateTime(r.CheckedAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "checked_at",
				Message: "checked_at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CheckOutRequest closes a target user's open record. The bonus leave-day
// is never granted through this path.
type CheckOutRequest struct {
	UserID string         `json:"user_id"`
	Date   string         `json:"date"`
	Period checkin.Period `json:"period"`
	// CheckedOutAt backfills a past time, RFC3339. Empty means now.
	CheckedOutAt string `json:"checked_out_at"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !r.Period.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be morning or afternoon",
		})
	}

	if r.CheckedOutAt != "" {
		if _, ok := validator.IsValidDateTime(r.CheckedOutAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "checked_out_at",
				Message: "checked_out_at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoleRequest struct {
	UserID string    `json:"user_id"`
	Role   user.Role `json:"role"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Role != user.RoleUser && r.Role != user.RoleAdmin {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be user or admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetExtraDaysRequest struct {
	UserID    string  `json:"user_id"`
	ExtraDays float64 `json:"extra_days"`
}

func (r *SetExtraDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.ExtraDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "extra_days",
			Message: "extra_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
