package settings

import (
	"github.com/devstudio/checkin-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	WorkDays              []int   `json:"work_days"`
	MorningLocationName   string  `json:"morning_location_name"`
	MorningLat            float64 `json:"morning_lat"`
	MorningLng            float64 `json:"morning_lng"`
	MorningRadius         int     `json:"morning_radius"`
	AfternoonLocationName string  `json:"afternoon_location_name"`
	AfternoonLat          float64 `json:"afternoon_lat"`
	AfternoonLng          float64 `json:"afternoon_lng"`
	AfternoonRadius       int     `json:"afternoon_radius"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, d := range r.WorkDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "work_days",
				Message: "work_days entries must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	errs = append(errs, validateLocation("morning", r.MorningLocationName, r.MorningLat, r.MorningLng, r.MorningRadius)...)
	errs = append(errs, validateLocation("afternoon", r.AfternoonLocationName, r.AfternoonLat, r.AfternoonLng, r.AfternoonRadius)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// validateLocation checks one period block. An empty name means the period
// is left unconfigured, which is allowed; a named location must carry valid
// coordinates and a positive radius.
func validateLocation(prefix, name string, lat, lng float64, radius int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		return nil
	}

	if lat < -90 || lat > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "_lat",
			Message: "latitude must be between -90 and 90",
		})
	}
	if lng < -180 || lng > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "_lng",
			Message: "longitude must be between -180 and 180",
		})
	}
	if radius <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "_radius",
			Message: "radius must be greater than zero",
		})
	}

	return errs
}

type SettingsResponse struct {
	ID                    string  `json:"id"`
	UserID                string  `json:"user_id"`
	WorkDays              []int   `json:"work_days"`
	MorningLocationName   string  `json:"morning_location_name"`
	MorningLat            float64 `json:"morning_lat"`
	MorningLng            float64 `json:"morning_lng"`
	MorningRadius         int     `json:"morning_radius"`
	AfternoonLocationName string  `json:"afternoon_location_name"`
	AfternoonLat          float64 `json:"afternoon_lat"`
	AfternoonLng          float64 `json:"afternoon_lng"`
	AfternoonRadius       int     `json:"afternoon_radius"`
	NeedsOnboarding       bool    `json:"needs_onboarding"`
}

func ToResponse(s Settings) SettingsResponse {
	resp := SettingsResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		WorkDays:        s.WorkDays,
		NeedsOnboarding: s.NeedsOnboarding(),
	}
	if resp.WorkDays == nil {
		resp.WorkDays = DefaultWorkDays
	}
	if s.Morning != nil {
		resp.MorningLocationName = s.Morning.Name
		resp.MorningLat = s.Morning.Lat
		resp.MorningLng = s.Morning.Lng
		resp.MorningRadius = s.Morning.Radius
	}
	if s.Afternoon != nil {
		resp.AfternoonLocationName = s.Afternoon.Name
		resp.AfternoonLat = s.Afternoon.Lat
		resp.AfternoonLng = s.Afternoon.Lng
		resp.AfternoonRadius = s.Afternoon.Radius
	}
	return resp
}
