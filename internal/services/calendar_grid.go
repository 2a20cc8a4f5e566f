package services

import (
	"time"

	"github.com/nordvik/inkwell/internal/models"
	"github.com/shopspring/decimal"
)

// calendarGridSize keeps the month view at six full Monday-first weeks no
// matter how the month aligns, so the layout never jumps between 5 and 6 rows.
const calendarGridSize = 42

type CalendarCell struct {
	Date            time.Time       `json:"date"`
	DateString      string          `json:"date_string"`
	Day             int             `json:"day"`
	InMonth         bool            `json:"in_month"`
	Duration        decimal.Decimal `json:"duration"`
	HasLog          bool            `json:"has_log"`
	HasFullDuration bool            `json:"has_full_duration"`
}

// BuildMonthGrid lays the reference month out as exactly 42 day cells:
// leading days of the previous month down to the nearest Monday, every day
// of the month, then days of the next month up to the 42nd cell. Cells
// outside the month are returned with InMonth=false and must not accept
// new log entries.
func BuildMonthGrid(month time.Month, year int, entries []models.WorkLogEntry, location *time.Location) []CalendarCell {
	if location == nil {
		location = time.UTC
	}

	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, location)
	offset := (int(firstOfMonth.Weekday()) + 6) % 7
	gridStart := firstOfMonth.AddDate(0, 0, -offset)

	durationByDate := make(map[string]decimal.Decimal, len(entries))
	fullEntryByDate := make(map[string]bool, len(entries))
	for _, entry := range entries {
		key := DateAtLocation(entry.Date, location).Format("2006-01-02")
		durationByDate[key] = durationByDate[key].Add(entry.Duration)
		if entry.Duration.Equal(models.FullDayDuration) {
			fullEntryByDate[key] = true
		}
	}

	cells := make([]CalendarCell, 0, calendarGridSize)
	for index := 0; index < calendarGridSize; index++ {
		day := gridStart.AddDate(0, 0, index)
		key := day.Format("2006-01-02")
		duration, hasLog := durationByDate[key]

		cells = append(cells, CalendarCell{
			Date:            day,
			DateString:      key,
			Day:             day.Day(),
			InMonth:         day.Month() == month,
			Duration:        duration,
			HasLog:          hasLog,
			HasFullDuration: fullEntryByDate[key] || duration.Equal(models.FullDayDuration),
		})
	}

	return cells
}
