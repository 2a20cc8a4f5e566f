package services

import (
	"testing"
	"time"

	"github.com/nordvik/inkwell/internal/models"
	"github.com/shopspring/decimal"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", value, err)
	}
	return parsed
}

func testEntry(t *testing.T, day string, duration string) models.WorkLogEntry {
	t.Helper()
	return models.WorkLogEntry{
		OwnerID:     1,
		Date:        mustParseDay(t, day),
		ProjectCode: "ACME-01",
		Duration:    mustDecimal(t, duration),
	}
}

func testLeaveEntry(t *testing.T, day string) models.WorkLogEntry {
	t.Helper()
	return models.WorkLogEntry{
		OwnerID:     1,
		Date:        mustParseDay(t, day),
		ProjectCode: models.LeaveProjectCode,
		Duration:    models.FullDayDuration,
		IsLeaveDay:  true,
	}
}
