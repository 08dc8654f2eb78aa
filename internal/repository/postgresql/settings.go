package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/devstudio/checkin-backend-go/internal/domain/settings"
	"github.com/devstudio/checkin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

// NewSettingsRepository creates a new instance of settings.SettingsRepository.
func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// settingsRow flattens the two optional locations into nullable columns.
type settingsRow struct {
	morningName   *string
	morningLat    *float64
	morningLng    *float64
	morningRadius *int

	afternoonName   *string
	afternoonLat    *float64
	afternoonLng    *float64
	afternoonRadius *int
}

func toRow(s settings.Settings) settingsRow {
	var row settingsRow
	if s.Morning != nil {
		row.morningName = &s.Morning.Name
		row.morningLat = &s.Morning.Lat
		row.morningLng = &s.Morning.Lng
		row.morningRadius = &s.Morning.Radius
	}
	if s.Afternoon != nil {
		row.afternoonName = &s.Afternoon.Name
		row.afternoonLat = &s.Afternoon.Lat
		row.afternoonLng = &s.Afternoon.Lng
		row.afternoonRadius = &s.Afternoon.Radius
	}
	return row
}

func scanSettings(row pgx.Row) (settings.Settings, error) {
	var s settings.Settings
	var r settingsRow

	err := row.Scan(
		&s.ID, &s.UserID, &s.WorkDays,
		&r.morningName, &r.morningLat, &r.morningLng, &r.morningRadius,
		&r.afternoonName, &r.afternoonLat, &r.afternoonLng, &r.afternoonRadius,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return settings.Settings{}, err
	}

	if r.morningName != nil {
		s.Morning = &settings.Location{
			Name:   *r.morningName,
			Lat:    *r.morningLat,
			Lng:    *r.morningLng,
			Radius: *r.morningRadius,
		}
	}
	if r.afternoonName != nil {
		s.Afternoon = &settings.Location{
			Name:   *r.afternoonName,
			Lat:    *r.afternoonLat,
			Lng:    *r.afternoonLng,
			Radius: *r.afternoonRadius,
		}
	}

	return s, nil
}

const settingsColumns = `id, user_id, work_days,
	   morning_name, morning_lat, morning_lng, morning_radius,
	   afternoon_name, afternoon_lat, afternoon_lng, afternoon_radius,
	   created_at, updated_at`

// GetByUserID implements settings.SettingsRepository.
func (r *settingsRepository) GetByUserID(ctx context.Context, userID string) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingsColumns + ` FROM user_settings WHERE user_id = $1`

	s, err := scanSettings(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Settings{}, settings.ErrSettingsNotFound
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// Create implements settings.SettingsRepository.
func (r *settingsRepository) Create(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	row := toRow(s)
	query := `
		INSERT INTO user_settings (
			id, user_id, work_days,
			morning_name, morning_lat, morning_lng, morning_radius,
			afternoon_name, afternoon_lat, afternoon_lng, afternoon_radius
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.UserID, s.WorkDays,
		row.morningName, row.morningLat, row.morningLng, row.morningRadius,
		row.afternoonName, row.afternoonLat, row.afternoonLng, row.afternoonRadius,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to create settings: %w", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	row := toRow(s)
	query := `
		INSERT INTO user_settings (
			id, user_id, work_days,
			morning_name, morning_lat, morning_lng, morning_radius,
			afternoon_name, afternoon_lat, afternoon_lng, afternoon_radius
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			work_days = EXCLUDED.work_days,
			morning_name = EXCLUDED.morning_name,
			morning_lat = EXCLUDED.morning_lat,
			morning_lng = EXCLUDED.morning_lng,
			morning_radius = EXCLUDED.morning_radius,
			afternoon_name = EXCLUDED.afternoon_name,
			afternoon_lat = EXCLUDED.afternoon_lat,
			afternoon_lng = EXCLUDED.afternoon_lng,
			afternoon_radius = EXCLUDED.afternoon_radius,
			updated_at = NOW()
		RETURNING ` + settingsColumns

	result, err := scanSettings(q.QueryRow(ctx, query,
		s.ID, s.UserID, s.WorkDays,
		row.morningName, row.morningLat, row.morningLng, row.morningRadius,
		row.afternoonName, row.afternoonLat, row.afternoonLng, row.afternoonRadius,
	))
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to upsert settings: %w", err)
	}

	return result, nil
}
