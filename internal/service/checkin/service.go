package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/devstudio/checkin-backend-go/internal/domain/settings"
	"github.com/devstudio/checkin-backend-go/internal/domain/user"
	"github.com/devstudio/checkin-backend-go/internal/pkg/database"
	"github.com/devstudio/checkin-backend-go/internal/pkg/geo"
	"github.com/devstudio/checkin-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CheckInServiceImpl struct {
	db *database.DB
	checkin.CheckInRepository
	settings.SettingsRepository
	user.UserRepository

	// now and withTx are swappable for tests.
	now    func() time.Time
	withTx func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error
}

func NewCheckInService(db *database.DB, checkInRepository checkin.CheckInRepository, settingsRepository settings.SettingsRepository, userRepository user.UserRepository) checkin.CheckInService {
	return &CheckInServiceImpl{
		db:                 db,
		CheckInRepository:  checkInRepository,
		SettingsRepository: settingsRepository,
		UserRepository:     userRepository,
		now:                time.Now,
		withTx:             postgresql.WithTransaction,
	}
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// CheckIn implements checkin.CheckInService.
func (s *CheckInServiceImpl) CheckIn(ctx context.Context, req checkin.CheckInRequest) (checkin.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.CheckInResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return checkin.CheckInResponse{}, err
	}

	if req.Lat == nil || req.Lng == nil {
		return checkin.CheckInResponse{}, checkin.ErrLocationUnavailable
	}

	userSettings, err := s.SettingsRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return checkin.CheckInResponse{}, checkin.ErrLocationNotConfigured
		}
		return checkin.CheckInResponse{}, err
	}

	target := userSettings.LocationFor(req.Period)
	if target == nil {
		return checkin.CheckInResponse{}, checkin.ErrLocationNotConfigured
	}

	if req.Period == checkin.PeriodAfternoon {
		morning, err := s.CheckInRepository.GetByUserDateAndPeriod(ctx, userID, req.Date, checkin.PeriodMorning)
		if err != nil {
			return checkin.CheckInResponse{}, err
		}
		if morning != nil && !morning.CheckedOut() {
			return checkin.CheckInResponse{}, checkin.ErrPriorPeriodOpen
		}
	}

	distance := geo.DistanceMeters(*req.Lat, *req.Lng, target.Lat, target.Lng)
	if distance > float64(target.Radius) {
		return checkin.CheckInResponse{}, &checkin.OutOfRangeError{
			LocationName: target.Name,
			Distance:     distance,
			Radius:       target.Radius,
		}
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	record, err := s.CheckInRepository.Create(ctx, checkin.CheckIn{
		ID:           uuid.NewString(),
		UserID:       userID,
		Date:         req.Date,
		Period:       req.Period,
		LocationName: target.Name,
		Lat:          *req.Lat,
		Lng:          *req.Lng,
		CheckedAt:    s.now().UTC(),
		IsExtraDay:   !userSettings.IsWorkDay(date),
	})
	if err != nil {
		return checkin.CheckInResponse{}, err
	}

	return checkin.ToResponse(record), nil
}

// CheckOut implements checkin.CheckInService. The record update and the
// leave-day credit commit together; the conditional update inside
// CompleteCheckOut makes sure a record is credited at most once even under
// concurrent checkouts.
func (s *CheckInServiceImpl) CheckOut(ctx context.Context, req checkin.CheckOutRequest) (checkin.CheckInResponse, user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.CheckInResponse{}, user.UserResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return checkin.CheckInResponse{}, user.UserResponse{}, err
	}

	open, err := s.CheckInRepository.GetByUserDateAndPeriod(ctx, userID, req.Date, req.Period)
	if err != nil {
		return checkin.CheckInResponse{}, user.UserResponse{}, err
	}
	if open == nil {
		return checkin.CheckInResponse{}, user.UserResponse{}, checkin.ErrNotCheckedIn
	}
	if open.CheckedOut() {
		return checkin.CheckInResponse{}, user.UserResponse{}, checkin.ErrAlreadyCheckedOut
	}

	checkedOutAt := s.now().UTC()
	workMinutes := int(checkedOutAt.Sub(open.CheckedAt).Minutes())
	if workMinutes < 0 {
		workMinutes = 0
	}

	earned := 0.0
	if req.EarnExtra && open.IsExtraDay && workMinutes >= checkin.BonusThresholdMinutes {
		earned = checkin.BonusLeaveDays
	}

	var record checkin.CheckIn
	var userData user.User
	err = s.withTx(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		record, err = s.CheckInRepository.CompleteCheckOut(txCtx, userID, req.Date, req.Period, checkin.CheckOutUpdate{
			CheckedOutAt: checkedOutAt,
			WorkMinutes:  workMinutes,
			EarnedExtra:  earned,
		})
		if err != nil {
			return err
		}

		if earned > 0 {
			userData, err = s.UserRepository.AddExtraDays(txCtx, userID, earned)
		} else {
			userData, err = s.UserRepository.GetByID(txCtx, userID)
		}
		return err
	})
	if err != nil {
		return checkin.CheckInResponse{}, user.UserResponse{}, err
	}

	return checkin.ToResponse(record), user.ToResponse(userData), nil
}

// ListByDate implements checkin.CheckInService.
func (s *CheckInServiceImpl) ListByDate(ctx context.Context, date string) ([]checkin.CheckInResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.CheckInRepository.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return checkin.ToResponses(records), nil
}

// ListByMonth implements checkin.CheckInService.
func (s *CheckInServiceImpl) ListByMonth(ctx context.Context, year, month int) ([]checkin.CheckInResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.CheckInRepository.ListByUserAndMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	return checkin.ToResponses(records), nil
}
