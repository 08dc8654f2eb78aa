package report

import (
	"testing"
	"time"

	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/devstudio/checkin-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closed(userID, date string, period checkin.Period, minutes int) checkin.CheckIn {
	out := time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC)
	return checkin.CheckIn{
		UserID:       userID,
		Date:         date,
		Period:       period,
		CheckedOutAt: &out,
		WorkMinutes:  &minutes,
	}
}

func open(userID, date string, period checkin.Period) checkin.CheckIn {
	return checkin.CheckIn{
		UserID: userID,
		Date:   date,
		Period: period,
	}
}

func TestCompleteDays(t *testing.T) {
	records := []checkin.CheckIn{
		// complete day
		closed("u1", "2025-01-13", checkin.PeriodMorning, 180),
		closed("u1", "2025-01-13", checkin.PeriodAfternoon, 240),
		// only morning closed
		closed("u1", "2025-01-14", checkin.PeriodMorning, 180),
		// both present, afternoon still open
		closed("u1", "2025-01-15", checkin.PeriodMorning, 180),
		open("u1", "2025-01-15", checkin.PeriodAfternoon),
	}

	assert.Equal(t, 1, CompleteDays(records))
}

func TestTotalWorkMinutes_OpenRecordsContributeNothing(t *testing.T) {
	records := []checkin.CheckIn{
		closed("u1", "2025-01-13", checkin.PeriodMorning, 180),
		closed("u1", "2025-01-13", checkin.PeriodAfternoon, 245),
		open("u1", "2025-01-14", checkin.PeriodMorning),
	}

	assert.Equal(t, 425, TotalWorkMinutes(records))
}

func TestDayStatuses(t *testing.T) {
	records := []checkin.CheckIn{
		closed("u1", "2025-01-13", checkin.PeriodMorning, 180),
		closed("u1", "2025-01-13", checkin.PeriodAfternoon, 240),
		closed("u1", "2025-01-14", checkin.PeriodMorning, 180),
		open("u1", "2025-01-15", checkin.PeriodMorning),
	}

	statuses := DayStatuses(records)
	assert.Equal(t, DayComplete, statuses["2025-01-13"])
	assert.Equal(t, DayPartial, statuses["2025-01-14"])
	assert.Equal(t, DayPartial, statuses["2025-01-15"])

	_, exists := statuses["2025-01-16"]
	assert.False(t, exists)
}

func TestSortRecords(t *testing.T) {
	records := []checkin.CheckIn{
		open("u1", "2025-01-13", checkin.PeriodAfternoon),
		open("u1", "2025-01-14", checkin.PeriodAfternoon),
		open("u1", "2025-01-14", checkin.PeriodMorning),
		open("u1", "2025-01-13", checkin.PeriodMorning),
	}

	SortRecords(records)

	require.Len(t, records, 4)
	assert.Equal(t, "2025-01-14", records[0].Date)
	assert.Equal(t, checkin.PeriodMorning, records[0].Period)
	assert.Equal(t, "2025-01-14", records[1].Date)
	assert.Equal(t, checkin.PeriodAfternoon, records[1].Period)
	assert.Equal(t, "2025-01-13", records[2].Date)
	assert.Equal(t, checkin.PeriodMorning, records[2].Period)
	assert.Equal(t, "2025-01-13", records[3].Date)
	assert.Equal(t, checkin.PeriodAfternoon, records[3].Period)
}

func TestMonthlyStats(t *testing.T) {
	users := []user.User{
		{ID: "u1", Name: "Alice", ExtraDays: 1.5},
		{ID: "u2", Name: "Bob"},
	}
	records := []checkin.CheckIn{
		closed("u1", "2025-01-13", checkin.PeriodMorning, 180),
		closed("u1", "2025-01-13", checkin.PeriodAfternoon, 240),
		closed("u1", "2025-01-14", checkin.PeriodMorning, 100),
	}

	stats := MonthlyStats(users, records)
	require.Len(t, stats, 2)

	assert.Equal(t, "u1", stats[0].UserID)
	assert.Equal(t, 1, stats[0].TotalDays)
	assert.Equal(t, 520, stats[0].TotalMinutes)
	assert.Equal(t, 1.5, stats[0].ExtraDays)

	// Users without records still get a row.
	assert.Equal(t, "u2", stats[1].UserID)
	assert.Equal(t, 0, stats[1].TotalDays)
	assert.Equal(t, 0, stats[1].TotalMinutes)
}
