package postgresql

import (
	"testing"
	"time"

	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/stretchr/testify/assert"
)

func TestClassifyCheckOutMiss(t *testing.T) {
	out := time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, classifyCheckOutMiss(nil), checkin.ErrNotCheckedIn)
	assert.ErrorIs(t, classifyCheckOutMiss(&checkin.CheckIn{}), checkin.ErrStorageConflict)
	assert.ErrorIs(t, classifyCheckOutMiss(&checkin.CheckIn{CheckedOutAt: &out}), checkin.ErrAlreadyCheckedOut)
}
