package settings

import "context"

type SettingsRepository interface {
	// GetByUserID returns the user's settings row, or ErrSettingsNotFound.
	GetByUserID(ctx context.Context, userID string) (Settings, error)

	Create(ctx context.Context, settings Settings) (Settings, error)

	// Upsert replaces the full settings row for the user.
	Upsert(ctx context.Context, settings Settings) (Settings, error)
}
