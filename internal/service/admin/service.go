package admin

import (
	"context"
	"errors"
	"time"

	"github.com/devstudio/checkin-backend-go/internal/domain/admin"
	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/devstudio/checkin-backend-go/internal/domain/settings"
	"github.com/devstudio/checkin-backend-go/internal/domain/user"
	"github.com/devstudio/checkin-backend-go/internal/pkg/validator"
	"github.com/devstudio/checkin-backend-go/internal/service/report"
	"github.com/google/uuid"
)

// manualEntryLabel is stored when the operator does not name a location.
const manualEntryLabel = "manual entry"

type AdminServiceImpl struct {
	checkin.CheckInRepository
	settings.SettingsRepository
	user.UserRepository

	now func() time.Time
}

func NewAdminService(checkInRepository checkin.CheckInRepository, settingsRepository settings.SettingsRepository, userRepository user.UserRepository) admin.AdminService {
	return &AdminServiceImpl{
		CheckInRepository:  checkInRepository,
		SettingsRepository: settingsRepository,
		UserRepository:     userRepository,
		now:                time.Now,
	}
}

// CheckInFor implements admin.AdminService. No geofence and no prior-period
// sequencing; the unique (user, date, period) constraint still rejects a
// second record.
func (s *AdminServiceImpl) CheckInFor(ctx context.Context, req admin.CheckInRequest) (checkin.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.CheckInResponse{}, err
	}

	if _, err := s.UserRepository.GetByID(ctx, req.UserID); err != nil {
		return checkin.CheckInResponse{}, err
	}

	userSettings, err := s.SettingsRepository.GetByUserID(ctx, req.UserID)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return checkin.CheckInResponse{}, err
		}
		// Unconfigured users still get records; the default schedule
		// decides the extra-day tag.
		userSettings = settings.Settings{UserID: req.UserID}
	}

	locationName := req.LocationName
	lat, lng := 0.0, 0.0
	if req.Lat != nil && req.Lng != nil {
		lat, lng = *req.Lat, *req.Lng
	} else if target := userSettings.LocationFor(req.Period); target != nil {
		lat, lng = target.Lat, target.Lng
		if locationName == "" {
			locationName = target.Name
		}
	}
	if locationName == "" {
		locationName = manualEntryLabel
	}

	checkedAt := s.now().UTC()
	if req.CheckedAt != "" {
		checkedAt, _ = time.Parse(time.RFC3339, req.CheckedAt)
		checkedAt = checkedAt.UTC()
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	record, err := s.CheckInRepository.Create(ctx, checkin.CheckIn{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		Date:         req.Date,
		Period:       req.Period,
		LocationName: locationName,
		Lat:          lat,
		Lng:          lng,
		CheckedAt:    checkedAt,
		IsExtraDay:   !userSettings.IsWorkDay(date),
	})
	if err != nil {
		return checkin.CheckInResponse{}, err
	}

	return checkin.ToResponse(record), nil
}

// CheckOutFor implements admin.AdminService. The operator path never grants
// the bonus leave-day, so no balance update is involved and no transaction
// is needed around the conditional update.
func (s *AdminServiceImpl) CheckOutFor(ctx context.Context, req admin.CheckOutRequest) (checkin.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.CheckInResponse{}, err
	}

	open, err := s.CheckInRepository.GetByUserDateAndPeriod(ctx, req.UserID, req.Date, req.Period)
	if err != nil {
		return checkin.CheckInResponse{}, err
	}
	if open == nil {
		return checkin.CheckInResponse{}, checkin.ErrNotCheckedIn
	}
	if open.CheckedOut() {
		return checkin.CheckInResponse{}, checkin.ErrAlreadyCheckedOut
	}

	checkedOutAt := s.now().UTC()
	if req.CheckedOutAt != "" {
		checkedOutAt, _ = time.Parse(time.RFC3339, req.CheckedOutAt)
		checkedOutAt = checkedOutAt.UTC()
	}

	// A record never checks out before it checked in, backfilled or not.
	if checkedOutAt.Before(open.CheckedAt) {
		return checkin.CheckInResponse{}, validator.ValidationErrors{{
			Field:   "checked_out_at",
			Message: "checked_out_at must not precede the check-in time",
		}}
	}

	workMinutes := int(checkedOutAt.Sub(open.CheckedAt).Minutes())

	record, err := s.CheckInRepository.CompleteCheckOut(ctx, req.UserID, req.Date, req.Period, checkin.CheckOutUpdate{
		CheckedOutAt: checkedOutAt,
		WorkMinutes:  workMinutes,
		EarnedExtra:  0,
	})
	if err != nil {
		return checkin.CheckInResponse{}, err
	}

	return checkin.ToResponse(record), nil
}

// DeleteCheckIn implements admin.AdminService.
func (s *AdminServiceImpl) DeleteCheckIn(ctx context.Context, id string) error {
	return s.CheckInRepository.Delete(ctx, id)
}

// ListUsers implements admin.AdminService.
func (s *AdminServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// ListCheckInsByDate implements admin.AdminService.
func (s *AdminServiceImpl) ListCheckInsByDate(ctx context.Context, date string) ([]checkin.CheckInResponse, error) {
	records, err := s.CheckInRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return checkin.ToResponses(records), nil
}

// ListCheckInsByMonth implements admin.AdminService.
func (s *AdminServiceImpl) ListCheckInsByMonth(ctx context.Context, year, month int) ([]checkin.CheckInResponse, error) {
	records, err := s.CheckInRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return checkin.ToResponses(records), nil
}

// MonthlyStats implements admin.AdminService.
func (s *AdminServiceImpl) MonthlyStats(ctx context.Context, year, month int) ([]report.UserStats, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.CheckInRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return report.MonthlyStats(users, records), nil
}

// UpdateUserRole implements admin.AdminService.
func (s *AdminServiceImpl) UpdateUserRole(ctx context.Context, req admin.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.UserRepository.UpdateRole(ctx, req.UserID, req.Role)
}

// SetUserExtraDays implements admin.AdminService.
func (s *AdminServiceImpl) SetUserExtraDays(ctx context.Context, req admin.SetExtraDaysRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.SetExtraDays(ctx, req.UserID, req.ExtraDays)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}
