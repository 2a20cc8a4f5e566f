package services

import (
	"errors"
	"time"
)

var ErrInvalidCycleRange = errors.New("cycle start must not be after cycle end")

const cycleBoundaryDay = 24

type BillingCycle struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	BusinessDays int       `json:"business_days"`
}

// DefaultCycle derives the recurring billing cycle for a reference month:
// the 24th of the previous calendar month through the 24th of the given
// month. January rolls the start back to December of the previous year.
func DefaultCycle(month time.Month, year int, location *time.Location) BillingCycle {
	if location == nil {
		location = time.UTC
	}

	startMonth := month - 1
	startYear := year
	if month == time.January {
		startMonth = time.December
		startYear = year - 1
	}

	start := time.Date(startYear, startMonth, cycleBoundaryDay, 0, 0, 0, 0, location)
	end := time.Date(year, month, cycleBoundaryDay, 0, 0, 0, 0, location)

	return BillingCycle{
		Start:        start,
		End:          end,
		BusinessDays: CountBusinessDays(start, end),
	}
}

// CustomCycle builds a cycle over an explicit range. The range is validated
// before anything else happens, so a rejected range leaves no trace.
func CustomCycle(start time.Time, end time.Time, location *time.Location) (BillingCycle, error) {
	startDay := DateAtLocation(start, location)
	endDay := DateAtLocation(end, location)
	if startDay.After(endDay) {
		return BillingCycle{}, ErrInvalidCycleRange
	}

	return BillingCycle{
		Start:        startDay,
		End:          endDay,
		BusinessDays: CountBusinessDays(startDay, endDay),
	}, nil
}
