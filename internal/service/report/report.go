package report

import (
	"sort"

	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/devstudio/checkin-backend-go/internal/domain/user"
)

// DayStatus describes how much of a calendar day's attendance is recorded.
type DayStatus string

const (
	DayComplete DayStatus = "complete" // both periods checked out
	DayPartial  DayStatus = "partial"  // some record exists, not complete
	DayNone     DayStatus = "none"
)

// CompleteDays counts distinct dates where both periods are checked out.
func CompleteDays(records []checkin.CheckIn) int {
	count := 0
	for _, status := range DayStatuses(records) {
		if status == DayComplete {
			count++
		}
	}
	return count
}

// TotalWorkMinutes sums the recorded work minutes. Open records contribute
// nothing.
func TotalWorkMinutes(records []checkin.CheckIn) int {
	total := 0
	for _, rec := range records {
		if rec.WorkMinutes != nil {
			total += *rec.WorkMinutes
		}
	}
	return total
}

// DayStatuses maps each date that has at least one record to its status.
// Dates with no records are simply absent (DayNone).
func DayStatuses(records []checkin.CheckIn) map[string]DayStatus {
	type dayState struct {
		morningOut   bool
		afternoonOut bool
	}

	days := make(map[string]dayState)
	for _, rec := range records {
		state := days[rec.Date]
		if rec.CheckedOut() {
			switch rec.Period {
			case checkin.PeriodMorning:
				state.morningOut = true
			case checkin.PeriodAfternoon:
				state.afternoonOut = true
			}
		}
		days[rec.Date] = state
	}

	statuses := make(map[string]DayStatus, len(days))
	for date, state := range days {
		if state.morningOut && state.afternoonOut {
			statuses[date] = DayComplete
		} else {
			statuses[date] = DayPartial
		}
	}
	return statuses
}

// SortRecords orders records date descending, morning before afternoon
// within a date. The sort is stable so equal keys keep their input order.
func SortRecords(records []checkin.CheckIn) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].Period == checkin.PeriodMorning && records[j].Period == checkin.PeriodAfternoon
	})
}

// UserStats is one row of the admin monthly dashboard.
type UserStats struct {
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	TotalDays    int     `json:"total_days"`
	TotalMinutes int     `json:"total_minutes"`
	ExtraDays    float64 `json:"extra_days"`
}

// MonthlyStats aggregates one month of records per user. Every known user
// gets a row, even with no records; ordering follows the users slice.
func MonthlyStats(users []user.User, records []checkin.CheckIn) []UserStats {
	byUser := make(map[string][]checkin.CheckIn)
	for _, rec := range records {
		byUser[rec.UserID] = append(byUser[rec.UserID], rec)
	}

	stats := make([]UserStats, 0, len(users))
	for _, u := range users {
		recs := byUser[u.ID]
		stats = append(stats, UserStats{
			UserID:       u.ID,
			Name:         u.Name,
			TotalDays:    CompleteDays(recs),
			TotalMinutes: TotalWorkMinutes(recs),
			ExtraDays:    u.ExtraDays,
		})
	}
	return stats
}
