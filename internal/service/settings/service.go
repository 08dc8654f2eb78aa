package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/devstudio/checkin-backend-go/internal/domain/settings"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepository settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepository,
	}
}

// GetMySettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetMySettings(ctx context.Context) (settings.SettingsResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	current, err := s.SettingsRepository.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.SettingsResponse{}, err
		}

		// First access: persist the default schedule so later reads and
		// updates work against a concrete row.
		current, err = s.SettingsRepository.Create(ctx, settings.Settings{
			ID:       uuid.NewString(),
			UserID:   userID,
			WorkDays: settings.DefaultWorkDays,
		})
		if err != nil {
			return settings.SettingsResponse{}, err
		}
	}

	return settings.ToResponse(current), nil
}

// UpdateMySettings implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateMySettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	updated := settings.Settings{
		ID:       uuid.NewString(),
		UserID:   userID,
		WorkDays: req.WorkDays,
	}
	if len(updated.WorkDays) == 0 {
		updated.WorkDays = settings.DefaultWorkDays
	}
	if req.MorningLocationName != "" {
		updated.Morning = &settings.Location{
			Name:   req.MorningLocationName,
			Lat:    req.MorningLat,
			Lng:    req.MorningLng,
			Radius: req.MorningRadius,
		}
	}
	if req.AfternoonLocationName != "" {
		updated.Afternoon = &settings.Location{
			Name:   req.AfternoonLocationName,
			Lat:    req.AfternoonLat,
			Lng:    req.AfternoonLng,
			Radius: req.AfternoonRadius,
		}
	}

	result, err := s.SettingsRepository.Upsert(ctx, updated)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	return settings.ToResponse(result), nil
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
