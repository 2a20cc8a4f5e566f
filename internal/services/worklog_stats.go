package services

import (
	"github.com/nordvik/inkwell/internal/models"
	"github.com/shopspring/decimal"
)

type WorkLogStats struct {
	TotalDays            int             `json:"total_days"`
	CompletedDays        int             `json:"completed_days"`
	LeaveDays            int             `json:"leave_days"`
	TotalDuration        decimal.Decimal `json:"total_duration"`
	CompletionPercentage float64         `json:"completion_percentage"`
}

// AggregateStats derives cycle-level totals from the entries logged inside a
// billing cycle. A day counts as completed when at least one non-leave entry
// exists on it, regardless of how much of the day the entries cover; the
// calendar's full-day marker is a separate computation. Leave days are
// removed from the business-day denominator, and TotalDays reports that
// adjusted denominator so "completed / total" renders directly.
func AggregateStats(entries []models.WorkLogEntry, cycle BillingCycle) WorkLogStats {
	stats := WorkLogStats{TotalDuration: decimal.Zero}

	normalDates := make(map[string]struct{})
	leaveDates := make(map[string]struct{})
	for _, entry := range entries {
		key := entry.Date.Format("2006-01-02")
		if entry.IsLeaveDay {
			leaveDates[key] = struct{}{}
			continue
		}
		normalDates[key] = struct{}{}
		stats.TotalDuration = stats.TotalDuration.Add(entry.Duration)
	}

	stats.CompletedDays = len(normalDates)
	stats.LeaveDays = len(leaveDates)
	stats.TotalDays = cycle.BusinessDays - stats.LeaveDays

	if stats.TotalDays > 0 {
		percentage := float64(stats.CompletedDays) / float64(stats.TotalDays) * 100
		if percentage > 100 {
			percentage = 100
		}
		stats.CompletionPercentage = percentage
	}

	return stats
}
