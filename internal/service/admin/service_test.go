package admin

import (
	"context"
	"testing"
	"time"

	"github.com/devstudio/checkin-backend-go/internal/domain/admin"
	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/devstudio/checkin-backend-go/internal/domain/settings"
	"github.com/devstudio/checkin-backend-go/internal/domain/user"
	"github.com/devstudio/checkin-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminTestNow = time.Date(2025, 1, 18, 15, 0, 0, 0, time.UTC)

// fakeCheckInRepo covers the subset of checkin.CheckInRepository the admin
// service touches; the embedded interface panics on anything else.
type fakeCheckInRepo struct {
	checkin.CheckInRepository
	records map[string]*checkin.CheckIn
}

func key(userID, date string, period checkin.Period) string {
	return userID + "|" + date + "|" + string(period)
}

func (f *fakeCheckInRepo) Create(_ context.Context, record checkin.CheckIn) (checkin.CheckIn, error) {
	k := key(record.UserID, record.Date, record.Period)
	if _, exists := f.records[k]; exists {
		return checkin.CheckIn{}, checkin.ErrAlreadyCheckedIn
	}
	stored := record
	f.records[k] = &stored
	return record, nil
}

func (f *fakeCheckInRepo) GetByUserDateAndPeriod(_ context.Context, userID, date string, period checkin.Period) (*checkin.CheckIn, error) {
	rec, exists := f.records[key(userID, date, period)]
	if !exists {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeCheckInRepo) CompleteCheckOut(_ context.Context, userID, date string, period checkin.Period, update checkin.CheckOutUpdate) (checkin.CheckIn, error) {
	rec, exists := f.records[key(userID, date, period)]
	if !exists {
		return checkin.CheckIn{}, checkin.ErrNotCheckedIn
	}
	if rec.CheckedOutAt != nil {
		return checkin.CheckIn{}, checkin.ErrAlreadyCheckedOut
	}
	checkedOutAt := update.CheckedOutAt
	minutes := update.WorkMinutes
	rec.CheckedOutAt = &checkedOutAt
	rec.WorkMinutes = &minutes
	rec.EarnedExtra = update.EarnedExtra
	return *rec, nil
}

func (f *fakeCheckInRepo) ListByMonth(_ context.Context, year, month int) ([]checkin.CheckIn, error) {
	var out []checkin.CheckIn
	for _, rec := range f.records {
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			continue
		}
		if date.Year() == year && int(date.Month()) == month {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeCheckInRepo) Delete(_ context.Context, id string) error {
	for k, rec := range f.records {
		if rec.ID == id {
			delete(f.records, k)
			return nil
		}
	}
	return checkin.ErrCheckInNotFound
}

type fakeSettingsRepo struct {
	settings.SettingsRepository
	settings map[string]settings.Settings
}

func (f *fakeSettingsRepo) GetByUserID(_ context.Context, userID string) (settings.Settings, error) {
	s, exists := f.settings[userID]
	if !exists {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	return s, nil
}

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, exists := f.users[id]
	if !exists {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	// Deterministic order for assertions.
	var out []user.User
	for _, id := range []string{"u1", "u2"} {
		if u, exists := f.users[id]; exists {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id string, role user.Role) error {
	u, exists := f.users[id]
	if !exists {
		return user.ErrUserNotFound
	}
	u.Role = role
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SetExtraDays(_ context.Context, id string, extraDays float64) (user.User, error) {
	u, exists := f.users[id]
	if !exists {
		return user.User{}, user.ErrUserNotFound
	}
	u.ExtraDays = extraDays
	f.users[id] = u
	return u, nil
}

func newTestService() (*AdminServiceImpl, *fakeCheckInRepo, *fakeUserRepo) {
	checkIns := &fakeCheckInRepo{records: make(map[string]*checkin.CheckIn)}
	settingsRepo := &fakeSettingsRepo{settings: map[string]settings.Settings{
		"u1": {
			UserID:   "u1",
			WorkDays: []int{1, 2, 3, 4, 5},
			Morning:  &settings.Location{Name: "HQ", Lat: 37.5665, Lng: 126.978, Radius: 100},
		},
	}}
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Alice", Role: user.RoleUser},
		"u2": {ID: "u2", Name: "Bob", Role: user.RoleUser},
	}}

	svc := &AdminServiceImpl{
		CheckInRepository:  checkIns,
		SettingsRepository: settingsRepo,
		UserRepository:     users,
		now:                func() time.Time { return adminTestNow },
	}
	return svc, checkIns, users
}

func TestAdminCheckInFor_SkipsGeofence(t *testing.T) {
	svc, _, _ := newTestService()

	// No coordinates at all: the target location fills them in.
	record, err := svc.CheckInFor(context.Background(), admin.CheckInRequest{
		UserID: "u1",
		Date:   "2025-01-15",
		Period: checkin.PeriodMorning,
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", record.UserID)
	assert.Equal(t, "HQ", record.LocationName)
	assert.Equal(t, 37.5665, record.Lat)
	assert.False(t, record.IsExtraDay)
}

func TestAdminCheckInFor_ManualEntryLabel(t *testing.T) {
	svc, _, _ := newTestService()

	// u2 has no settings and no location was named: Saturday, far away.
	record, err := svc.CheckInFor(context.Background(), admin.CheckInRequest{
		UserID: "u2",
		Date:   "2025-01-18",
		Period: checkin.PeriodAfternoon,
	})
	require.NoError(t, err)

	assert.Equal(t, manualEntryLabel, record.LocationName)
	assert.True(t, record.IsExtraDay)
}

func TestAdminCheckInFor_UniquenessStillEnforced(t *testing.T) {
	svc, _, _ := newTestService()

	req := admin.CheckInRequest{UserID: "u1", Date: "2025-01-15", Period: checkin.PeriodMorning}
	_, err := svc.CheckInFor(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CheckInFor(context.Background(), req)
	assert.ErrorIs(t, err, checkin.ErrAlreadyCheckedIn)
}

func TestAdminCheckInFor_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CheckInFor(context.Background(), admin.CheckInRequest{
		UserID: "nobody",
		Date:   "2025-01-15",
		Period: checkin.PeriodMorning,
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestAdminCheckOutFor_NeverGrantsBonus(t *testing.T) {
	svc, checkIns, users := newTestService()

	// Qualifying extra-day record, 4 hours old.
	_, err := checkIns.Create(context.Background(), checkin.CheckIn{
		ID:         "rec-1",
		UserID:     "u1",
		Date:       "2025-01-18",
		Period:     checkin.PeriodMorning,
		CheckedAt:  adminTestNow.Add(-4 * time.Hour),
		IsExtraDay: true,
	})
	require.NoError(t, err)

	record, err := svc.CheckOutFor(context.Background(), admin.CheckOutRequest{
		UserID: "u1",
		Date:   "2025-01-18",
		Period: checkin.PeriodMorning,
	})
	require.NoError(t, err)

	assert.Equal(t, 240, record.WorkMinutes)
	assert.Equal(t, 0.0, record.EarnedExtra)

	u, err := users.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, u.ExtraDays)
}

func TestAdminCheckOutFor_BackfillTime(t *testing.T) {
	svc, checkIns, _ := newTestService()

	checkedAt := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	_, err := checkIns.Create(context.Background(), checkin.CheckIn{
		ID:        "rec-2",
		UserID:    "u1",
		Date:      "2025-01-10",
		Period:    checkin.PeriodMorning,
		CheckedAt: checkedAt,
	})
	require.NoError(t, err)

	record, err := svc.CheckOutFor(context.Background(), admin.CheckOutRequest{
		UserID:       "u1",
		Date:         "2025-01-10",
		Period:       checkin.PeriodMorning,
		CheckedOutAt: "2025-01-10T12:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 210, record.WorkMinutes)
}

func TestAdminCheckOutFor_RejectsTimeBeforeCheckIn(t *testing.T) {
	svc, checkIns, _ := newTestService()

	checkedAt := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	_, err := checkIns.Create(context.Background(), checkin.CheckIn{
		ID:        "rec-4",
		UserID:    "u1",
		Date:      "2025-01-10",
		Period:    checkin.PeriodMorning,
		CheckedAt: checkedAt,
	})
	require.NoError(t, err)

	// Backfill two hours before the check-in: rejected, nothing persisted.
	_, err = svc.CheckOutFor(context.Background(), admin.CheckOutRequest{
		UserID:       "u1",
		Date:         "2025-01-10",
		Period:       checkin.PeriodMorning,
		CheckedOutAt: "2025-01-10T07:00:00Z",
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "checked_out_at", validationErrs[0].Field)

	open, err := checkIns.GetByUserDateAndPeriod(context.Background(), "u1", "2025-01-10", checkin.PeriodMorning)
	require.NoError(t, err)
	assert.Nil(t, open.CheckedOutAt)
}

func TestAdminDeleteCheckIn(t *testing.T) {
	svc, checkIns, _ := newTestService()

	_, err := checkIns.Create(context.Background(), checkin.CheckIn{
		ID:     "rec-3",
		UserID: "u1",
		Date:   "2025-01-15",
		Period: checkin.PeriodMorning,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCheckIn(context.Background(), "rec-3"))
	assert.ErrorIs(t, svc.DeleteCheckIn(context.Background(), "rec-3"), checkin.ErrCheckInNotFound)
}

func TestAdminMonthlyStats(t *testing.T) {
	svc, checkIns, _ := newTestService()

	out := adminTestNow
	minutes := 400
	for _, period := range []checkin.Period{checkin.PeriodMorning, checkin.PeriodAfternoon} {
		_, err := checkIns.Create(context.Background(), checkin.CheckIn{
			ID:           "stats-" + string(period),
			UserID:       "u1",
			Date:         "2025-01-15",
			Period:       period,
			CheckedOutAt: &out,
			WorkMinutes:  &minutes,
		})
		require.NoError(t, err)
	}

	stats, err := svc.MonthlyStats(context.Background(), 2025, 1)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "u1", stats[0].UserID)
	assert.Equal(t, 1, stats[0].TotalDays)
	assert.Equal(t, 800, stats[0].TotalMinutes)
	assert.Equal(t, 0, stats[1].TotalDays)
}

func TestAdminUpdateUserRole(t *testing.T) {
	svc, _, users := newTestService()

	err := svc.UpdateUserRole(context.Background(), admin.UpdateRoleRequest{UserID: "u2", Role: user.RoleAdmin})
	require.NoError(t, err)

	u, err := users.GetByID(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role)
}

func TestAdminSetUserExtraDays(t *testing.T) {
	svc, _, _ := newTestService()

	updated, err := svc.SetUserExtraDays(context.Background(), admin.SetExtraDaysRequest{UserID: "u1", ExtraDays: 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.ExtraDays)

	_, err = svc.SetUserExtraDays(context.Background(), admin.SetExtraDaysRequest{UserID: "u1", ExtraDays: -1})
	assert.Error(t, err)
}
