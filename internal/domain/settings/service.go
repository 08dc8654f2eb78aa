package settings

import "context"

type SettingsService interface {
	// GetMySettings returns the caller's settings, creating a default row
	// on first access.
	GetMySettings(ctx context.Context) (SettingsResponse, error)

	UpdateMySettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
