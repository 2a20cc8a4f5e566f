package services

import (
	"testing"
	"time"

	"github.com/nordvik/inkwell/internal/models"
)

func TestAggregateStats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		entries       []models.WorkLogEntry
		businessDays  int
		wantTotal     int
		wantCompleted int
		wantLeave     int
		wantDuration  string
		wantPercent   float64
	}{
		{
			name:         "no entries",
			businessDays: 20,
			wantTotal:    20,
			wantDuration: "0.00",
		},
		{
			name: "partial entries complete whole days",
			entries: []models.WorkLogEntry{
				testEntry(t, "2024-03-01", "1.00"),
				testEntry(t, "2024-03-04", "0.25"),
			},
			businessDays:  20,
			wantTotal:     20,
			wantCompleted: 2,
			wantDuration:  "1.25",
			wantPercent:   10,
		},
		{
			name: "two entries on the same day count once",
			entries: []models.WorkLogEntry{
				testEntry(t, "2024-03-04", "0.50"),
				testEntry(t, "2024-03-04", "0.50"),
			},
			businessDays:  20,
			wantTotal:     20,
			wantCompleted: 1,
			wantDuration:  "1.00",
			wantPercent:   5,
		},
		{
			name: "leave days shrink the denominator",
			entries: []models.WorkLogEntry{
				testLeaveEntry(t, "2024-03-01"),
			},
			businessDays: 20,
			wantTotal:    19,
			wantLeave:    1,
			wantDuration: "0.00",
			wantPercent:  0,
		},
		{
			name: "all working days logged with leave in the mix",
			entries: []models.WorkLogEntry{
				testEntry(t, "2024-03-04", "1.00"),
				testEntry(t, "2024-03-05", "1.00"),
				testEntry(t, "2024-03-06", "1.00"),
				testLeaveEntry(t, "2024-03-07"),
			},
			businessDays:  4,
			wantTotal:     3,
			wantCompleted: 3,
			wantLeave:     1,
			wantDuration:  "3.00",
			wantPercent:   100,
		},
		{
			name: "percentage never exceeds one hundred",
			entries: []models.WorkLogEntry{
				testEntry(t, "2024-03-04", "1.00"),
				testEntry(t, "2024-03-05", "1.00"),
				testEntry(t, "2024-03-06", "1.00"),
			},
			businessDays:  2,
			wantTotal:     2,
			wantCompleted: 3,
			wantDuration:  "3.00",
			wantPercent:   100,
		},
		{
			name: "denominator exhausted by leave",
			entries: []models.WorkLogEntry{
				testLeaveEntry(t, "2024-03-04"),
				testLeaveEntry(t, "2024-03-05"),
				testEntry(t, "2024-03-06", "1.00"),
			},
			businessDays:  2,
			wantTotal:     0,
			wantCompleted: 1,
			wantLeave:     2,
			wantDuration:  "1.00",
			wantPercent:   0,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cycle := BillingCycle{
				Start:        mustParseDay(t, "2024-02-24"),
				End:          mustParseDay(t, "2024-03-24"),
				BusinessDays: testCase.businessDays,
			}

			stats := AggregateStats(testCase.entries, cycle)

			if stats.TotalDays != testCase.wantTotal {
				t.Fatalf("total days = %d, want %d", stats.TotalDays, testCase.wantTotal)
			}
			if stats.CompletedDays != testCase.wantCompleted {
				t.Fatalf("completed days = %d, want %d", stats.CompletedDays, testCase.wantCompleted)
			}
			if stats.LeaveDays != testCase.wantLeave {
				t.Fatalf("leave days = %d, want %d", stats.LeaveDays, testCase.wantLeave)
			}
			if got := stats.TotalDuration.StringFixed(2); got != testCase.wantDuration {
				t.Fatalf("total duration = %s, want %s", got, testCase.wantDuration)
			}
			if stats.CompletionPercentage != testCase.wantPercent {
				t.Fatalf("completion = %.2f, want %.2f", stats.CompletionPercentage, testCase.wantPercent)
			}
		})
	}
}

func TestAggregateStatsMatchesDefaultCycleScenario(t *testing.T) {
	t.Parallel()

	cycle := DefaultCycle(time.March, 2024, time.UTC)
	if cycle.BusinessDays != 20 {
		t.Fatalf("march 2024 cycle has %d business days, want 20", cycle.BusinessDays)
	}

	entries := []models.WorkLogEntry{
		testEntry(t, "2024-03-01", "1.00"),
		testEntry(t, "2024-03-04", "0.25"),
	}

	stats := AggregateStats(entries, cycle)
	if stats.CompletedDays != 2 {
		t.Fatalf("completed days = %d, want 2", stats.CompletedDays)
	}
	if got := stats.TotalDuration.StringFixed(2); got != "1.25" {
		t.Fatalf("total duration = %s, want 1.25", got)
	}
	if stats.CompletionPercentage != 10 {
		t.Fatalf("completion = %.2f, want 10.00", stats.CompletionPercentage)
	}
}
