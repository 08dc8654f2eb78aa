package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/devstudio/checkin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type checkInRepository struct {
	db *database.DB
}

// NewCheckInRepository creates a new instance of checkin.CheckInRepository.
func NewCheckInRepository(db *database.DB) checkin.CheckInRepository {
	return &checkInRepository{db: db}
}

const checkInColumns = `c.id, c.user_id, c.date, c.period, c.location_name, c.lat, c.lng,
	   c.checked_at, c.checked_out_at, c.work_minutes, c.is_extra_day, c.earned_extra,
	   c.created_at, c.updated_at`

func scanCheckIn(row pgx.Row) (checkin.CheckIn, error) {
	var rec checkin.CheckIn
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.Period, &rec.LocationName, &rec.Lat, &rec.Lng,
		&rec.CheckedAt, &rec.CheckedOutAt, &rec.WorkMinutes, &rec.IsExtraDay, &rec.EarnedExtra,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func scanCheckInWithUser(row pgx.Row) (checkin.CheckIn, error) {
	var rec checkin.CheckIn
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.Period, &rec.LocationName, &rec.Lat, &rec.Lng,
		&rec.CheckedAt, &rec.CheckedOutAt, &rec.WorkMinutes, &rec.IsExtraDay, &rec.EarnedExtra,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.UserName,
	)
	return rec, err
}

// Create implements checkin.CheckInRepository.
func (r *checkInRepository) Create(ctx context.Context, record checkin.CheckIn) (checkin.CheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO check_ins (id, user_id, date, period, location_name, lat, lng, checked_at, is_extra_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.Date,
		record.Period,
		record.LocationName,
		record.Lat,
		record.Lng,
		record.CheckedAt,
		record.IsExtraDay,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return checkin.CheckIn{}, checkin.ErrAlreadyCheckedIn
		}
		return checkin.CheckIn{}, fmt.Errorf("failed to create check-in: %w", err)
	}

	return record, nil
}

// GetByID implements checkin.CheckInRepository.
func (r *checkInRepository) GetByID(ctx context.Context, id string) (checkin.CheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + checkInColumns + ` FROM check_ins c WHERE c.id = $1`

	rec, err := scanCheckIn(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checkin.CheckIn{}, checkin.ErrCheckInNotFound
		}
		return checkin.CheckIn{}, fmt.Errorf("failed to get check-in: %w", err)
	}

	return rec, nil
}

// GetByUserDateAndPeriod implements checkin.CheckInRepository.
func (r *checkInRepository) GetByUserDateAndPeriod(ctx context.Context, userID, date string, period checkin.Period) (*checkin.CheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkInColumns + `
		FROM check_ins c
		WHERE c.user_id = $1 AND c.date = $2 AND c.period = $3
	`

	rec, err := scanCheckIn(q.QueryRow(ctx, query, userID, date, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get check-in by key: %w", err)
	}

	return &rec, nil
}

// CompleteCheckOut implements checkin.CheckInRepository. The UPDATE only
// matches while checked_out_at is still NULL, so of two racing checkouts
// exactly one writes the row.
func (r *checkInRepository) CompleteCheckOut(ctx context.Context, userID, date string, period checkin.Period, record checkin.CheckOutUpdate) (checkin.CheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE check_ins c
		SET checked_out_at = $1, work_minutes = $2, earned_extra = $3, updated_at = NOW()
		WHERE c.user_id = $4 AND c.date = $5 AND c.period = $6 AND c.checked_out_at IS NULL
		RETURNING ` + checkInColumns

	rec, err := scanCheckIn(q.QueryRow(ctx, query,
		record.CheckedOutAt, record.WorkMinutes, record.EarnedExtra,
		userID, date, period,
	))
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return checkin.CheckIn{}, fmt.Errorf("failed to complete checkout: %w", err)
	}

	// No row updated: distinguish "never checked in" from "already out".
	existing, lookupErr := r.GetByUserDateAndPeriod(ctx, userID, date, period)
	if lookupErr != nil {
		return checkin.CheckIn{}, lookupErr
	}
	return checkin.CheckIn{}, classifyCheckOutMiss(existing)
}

// classifyCheckOutMiss names the reason the conditional checkout update
// matched no row. An existing row that still reads as open means a
// concurrent writer got between the two statements.
func classifyCheckOutMiss(existing *checkin.CheckIn) error {
	switch {
	case existing == nil:
		return checkin.ErrNotCheckedIn
	case !existing.CheckedOut():
		return checkin.ErrStorageConflict
	default:
		return checkin.ErrAlreadyCheckedOut
	}
}

// ListByUserAndDate implements checkin.CheckInRepository.
func (r *checkInRepository) ListByUserAndDate(ctx context.Context, userID, date string) ([]checkin.CheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkInColumns + `
		FROM check_ins c
		WHERE c.user_id = $1 AND c.date = $2
		ORDER BY CASE c.period WHEN 'morning' THEN 0 ELSE 1 END
	`

	return r.queryMany(ctx, q, query, userID, date)
}

// ListByUserAndMonth implements checkin.CheckInRepository.
func (r *checkInRepository) ListByUserAndMonth(ctx context.Context, userID string, year, month int) ([]checkin.CheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkInColumns + `
		FROM check_ins c
		WHERE c.user_id = $1
		  AND c.date >= $2 AND c.date < $3
		ORDER BY c.date DESC, CASE c.period WHEN 'morning' THEN 0 ELSE 1 END
	`

	start, end := monthBounds(year, month)
	return r.queryMany(ctx, q, query, userID, start, end)
}

// ListByDate implements checkin.CheckInRepository.
func (r *checkInRepository) ListByDate(ctx context.Context, date string) ([]checkin.CheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkInColumns + `, u.name
		FROM check_ins c
		JOIN users u ON u.id = c.user_id
		WHERE c.date = $1
		ORDER BY u.name, CASE c.period WHEN 'morning' THEN 0 ELSE 1 END
	`

	return r.queryManyWithUser(ctx, q, query, date)
}

// ListByMonth implements checkin.CheckInRepository.
func (r *checkInRepository) ListByMonth(ctx context.Context, year, month int) ([]checkin.CheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkInColumns + `, u.name
		FROM check_ins c
		JOIN users u ON u.id = c.user_id
		WHERE c.date >= $1 AND c.date < $2
		ORDER BY c.date DESC, u.name, CASE c.period WHEN 'morning' THEN 0 ELSE 1 END
	`

	start, end := monthBounds(year, month)
	return r.queryManyWithUser(ctx, q, query, start, end)
}

// Delete implements checkin.CheckInRepository.
func (r *checkInRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM check_ins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete check-in: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return checkin.ErrCheckInNotFound
	}

	return nil
}

func (r *checkInRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...any) ([]checkin.CheckIn, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var records []checkin.CheckIn
	for rows.Next() {
		rec, err := scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *checkInRepository) queryManyWithUser(ctx context.Context, q database.Querier, query string, args ...any) ([]checkin.CheckIn, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var records []checkin.CheckIn
	for rows.Next() {
		rec, err := scanCheckInWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// monthBounds returns the half-open ["YYYY-MM-01", first-of-next-month) range
// for date-string comparison.
func monthBounds(year, month int) (string, string) {
	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	return fmt.Sprintf("%04d-%02d-01", year, month), fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)
}
