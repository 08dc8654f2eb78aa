package settings

import (
	"context"
	"testing"
	"time"

	"github.com/devstudio/checkin-backend-go/internal/domain/settings"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	settings map[string]settings.Settings
}

func (f *fakeSettingsRepo) GetByUserID(_ context.Context, userID string) (settings.Settings, error) {
	s, exists := f.settings[userID]
	if !exists {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	return s, nil
}

func (f *fakeSettingsRepo) Create(_ context.Context, s settings.Settings) (settings.Settings, error) {
	f.settings[s.UserID] = s
	return s, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s settings.Settings) (settings.Settings, error) {
	f.settings[s.UserID] = s
	return s, nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "user",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGetMySettings_CreatesDefaultRow(t *testing.T) {
	repo := &fakeSettingsRepo{settings: make(map[string]settings.Settings)}
	svc := NewSettingsService(repo)
	ctx := authedContext(t, "u1")

	resp, err := svc.GetMySettings(ctx)
	require.NoError(t, err)

	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, settings.DefaultWorkDays, resp.WorkDays)
	assert.True(t, resp.NeedsOnboarding)

	// The default row is persisted, not synthesized per call.
	_, exists := repo.settings["u1"]
	assert.True(t, exists)
}

func TestUpdateMySettings_FullConfiguration(t *testing.T) {
	repo := &fakeSettingsRepo{settings: make(map[string]settings.Settings)}
	svc := NewSettingsService(repo)
	ctx := authedContext(t, "u1")

	resp, err := svc.UpdateMySettings(ctx, settings.UpdateSettingsRequest{
		WorkDays:              []int{1, 2, 3},
		MorningLocationName:   "HQ",
		MorningLat:            37.5665,
		MorningLng:            126.978,
		MorningRadius:         100,
		AfternoonLocationName: "Annex",
		AfternoonLat:          37.57,
		AfternoonLng:          126.98,
		AfternoonRadius:       150,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, resp.WorkDays)
	assert.Equal(t, "HQ", resp.MorningLocationName)
	assert.Equal(t, "Annex", resp.AfternoonLocationName)
	assert.Equal(t, 150, resp.AfternoonRadius)
	assert.False(t, resp.NeedsOnboarding)
}

func TestUpdateMySettings_PartialLeavesOnboarding(t *testing.T) {
	repo := &fakeSettingsRepo{settings: make(map[string]settings.Settings)}
	svc := NewSettingsService(repo)
	ctx := authedContext(t, "u1")

	resp, err := svc.UpdateMySettings(ctx, settings.UpdateSettingsRequest{
		MorningLocationName: "HQ",
		MorningLat:          37.5665,
		MorningLng:          126.978,
		MorningRadius:       100,
	})
	require.NoError(t, err)

	// A single configured period does not complete onboarding.
	assert.True(t, resp.NeedsOnboarding)
	assert.Equal(t, settings.DefaultWorkDays, resp.WorkDays)
}

func TestUpdateMySettings_ValidationRejectsBadRadius(t *testing.T) {
	repo := &fakeSettingsRepo{settings: make(map[string]settings.Settings)}
	svc := NewSettingsService(repo)
	ctx := authedContext(t, "u1")

	_, err := svc.UpdateMySettings(ctx, settings.UpdateSettingsRequest{
		MorningLocationName: "HQ",
		MorningLat:          37.5665,
		MorningLng:          126.978,
		MorningRadius:       0,
	})
	assert.Error(t, err)
}

func TestIsWorkDay(t *testing.T) {
	s := settings.Settings{WorkDays: []int{1, 2, 3, 4, 5}}

	wednesday := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)

	assert.True(t, s.IsWorkDay(wednesday))
	assert.False(t, s.IsWorkDay(saturday))

	// Empty set falls back to Monday through Friday.
	empty := settings.Settings{}
	assert.True(t, empty.IsWorkDay(wednesday))
	assert.False(t, empty.IsWorkDay(saturday))
}
