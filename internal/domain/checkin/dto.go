package checkin

import (
	"time"

	"github.com/devstudio/checkin-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Date         string   `json:"date"` // YYYY-MM-DD
	Period       Period   `json:"period"`
	LocationName string   `json:"location_name"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if r.Lat != nil && (*r.Lat < -90 || *r.Lat > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "lat must be between -90 and 90",
		})
	}

	if r.Lng != nil && (*r.Lng < -180 || *r.Lng > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "lng",
			Message: "lng must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Date   string `json:"date"`
	Period Period `json:"period"`
	// EarnExtra is the caller's claim on the bonus leave-day. The actual
	// grant is decided inside checkout, against the threshold, so the
	// elapsed time cannot drift between prompt and confirmation.
	EarnExtra bool `json:"earn_extra"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckInResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     *string `json:"user_name,omitempty"`
	Date         string  `json:"date"`
	Period       string  `json:"period"`
	LocationName string  `json:"location_name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	CheckedAt    string  `json:"checked_at"`
	CheckedOutAt *string `json:"checked_out_at"`
	WorkMinutes  int     `json:"work_minutes"`
	IsExtraDay   bool    `json:"is_extra_day"`
	EarnedExtra  float64 `json:"earned_extra"`
}

func ToResponse(c CheckIn) CheckInResponse {
	var checkedOutAt *string
	if c.CheckedOutAt != nil {
		s := c.CheckedOutAt.Format(time.RFC3339)
		checkedOutAt = &s
	}

	workMinutes := 0
	if c.WorkMinutes != nil {
		workMinutes = *c.WorkMinutes
	}

	return CheckInResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		UserName:     c.UserName,
		Date:         c.Date,
		Period:       string(c.Period),
		LocationName: c.LocationName,
		Lat:          c.Lat,
		Lng:          c.Lng,
		CheckedAt:    c.CheckedAt.Format(time.RFC3339),
		CheckedOutAt: checkedOutAt,
		WorkMinutes:  workMinutes,
		IsExtraDay:   c.IsExtraDay,
		EarnedExtra:  c.EarnedExtra,
	}
}

func ToResponses(records []CheckIn) []CheckInResponse {
	responses := make([]CheckInResponse, 0, len(records))
	for _, c := range records {
		responses = append(responses, ToResponse(c))
	}
	return responses
}
