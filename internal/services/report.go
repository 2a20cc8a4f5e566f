package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nordvik/inkwell/internal/models"
)

var ErrEmptyReport = errors.New("no entries to export")

const (
	reportLabel      = "WorkLog"
	reportDateLayout = "02 Jan 2006"
	logTimeMark      = "Yes"
)

var ReportHeaders = []string{
	"Date",
	"Consultant",
	"Description",
	"Duration",
	"Project",
	"Contact Person",
	"Log Time",
}

type ReportRow struct {
	Date          string
	Consultant    string
	Description   string
	Duration      string
	Project       string
	ContactPerson string
	LogTime       string
}

// BuildReportRows flattens the entries into the fixed report column set.
// An empty entry list is refused up front so no zero-row artifact is ever
// produced.
func BuildReportRows(entries []models.WorkLogEntry, ownerName string) ([]ReportRow, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyReport
	}

	rows := make([]ReportRow, 0, len(entries))
	for _, entry := range entries {
		logTime := ""
		if entry.LogTime {
			logTime = logTimeMark
		}

		rows = append(rows, ReportRow{
			Date:          entry.Date.Format(reportDateLayout),
			Consultant:    ownerName,
			Description:   entry.Description,
			Duration:      entry.Duration.StringFixed(2),
			Project:       entry.ProjectCode,
			ContactPerson: entry.ContactPerson,
			LogTime:       logTime,
		})
	}
	return rows, nil
}

func (row ReportRow) Columns() []string {
	return []string{
		row.Date,
		row.Consultant,
		row.Description,
		row.Duration,
		row.Project,
		row.ContactPerson,
		row.LogTime,
	}
}

// ReportFilename names the export artifact after the owner and cycle window.
// The serializer appends the format extension.
func ReportFilename(ownerName string, cycle BillingCycle) string {
	owner := strings.ReplaceAll(strings.TrimSpace(ownerName), " ", "_")
	return fmt.Sprintf("%s_%s_%s-%s",
		reportLabel,
		owner,
		cycle.Start.Format("2006-01-02"),
		cycle.End.Format("2006-01-02"),
	)
}
