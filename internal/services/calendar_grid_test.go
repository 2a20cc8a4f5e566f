package services

import (
	"testing"
	"time"

	"github.com/nordvik/inkwell/internal/models"
)

func TestBuildMonthGridAlwaysHas42Cells(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		month time.Month
		year  int
	}{
		{name: "february starting monday", month: time.February, year: 2021},
		{name: "leap february", month: time.February, year: 2024},
		{name: "31-day month starting sunday", month: time.September, year: 2024},
		{name: "31-day month starting monday", month: time.July, year: 2024},
		{name: "december", month: time.December, year: 2024},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cells := BuildMonthGrid(testCase.month, testCase.year, nil, time.UTC)
			if len(cells) != 42 {
				t.Fatalf("grid has %d cells, want 42", len(cells))
			}
			for index := 1; index < len(cells); index++ {
				if !cells[index].Date.Equal(cells[index-1].Date.AddDate(0, 0, 1)) {
					t.Fatalf("cell %d is not one day after cell %d", index, index-1)
				}
			}
		})
	}
}

func TestBuildMonthGridStartsOnMonday(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		month     time.Month
		year      int
		wantFirst string
	}{
		{name: "month starting friday", month: time.March, year: 2024, wantFirst: "2024-02-26"},
		{name: "month starting monday aligns to day one", month: time.July, year: 2024, wantFirst: "2024-07-01"},
		{name: "month starting sunday needs six lead cells", month: time.September, year: 2024, wantFirst: "2024-08-26"},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cells := BuildMonthGrid(testCase.month, testCase.year, nil, time.UTC)
			if cells[0].Date.Weekday() != time.Monday {
				t.Fatalf("first cell falls on %s, want Monday", cells[0].Date.Weekday())
			}
			if cells[0].DateString != testCase.wantFirst {
				t.Fatalf("first cell = %s, want %s", cells[0].DateString, testCase.wantFirst)
			}
		})
	}
}

func TestBuildMonthGridMarksOutOfMonthCells(t *testing.T) {
	t.Parallel()

	cells := BuildMonthGrid(time.March, 2024, nil, time.UTC)

	inMonth := 0
	for _, cell := range cells {
		if cell.InMonth {
			inMonth++
			if cell.Date.Month() != time.March {
				t.Fatalf("cell %s flagged in-month but belongs to %s", cell.DateString, cell.Date.Month())
			}
		}
	}
	if inMonth != 31 {
		t.Fatalf("%d in-month cells, want 31", inMonth)
	}
}

func TestBuildMonthGridSumsDurationsPerDay(t *testing.T) {
	t.Parallel()

	entries := []models.WorkLogEntry{
		testEntry(t, "2024-03-04", "0.50"),
		testEntry(t, "2024-03-04", "0.50"),
		testEntry(t, "2024-03-05", "0.25"),
	}

	cells := BuildMonthGrid(time.March, 2024, entries, time.UTC)

	byDate := make(map[string]CalendarCell, len(cells))
	for _, cell := range cells {
		byDate[cell.DateString] = cell
	}

	fourth := byDate["2024-03-04"]
	if !fourth.HasLog {
		t.Fatal("expected 2024-03-04 to have a log")
	}
	if got := fourth.Duration.StringFixed(2); got != "1.00" {
		t.Fatalf("2024-03-04 duration = %s, want 1.00", got)
	}
	if !fourth.HasFullDuration {
		t.Fatal("two half-day entries should mark 2024-03-04 as a full day")
	}

	fifth := byDate["2024-03-05"]
	if !fifth.HasLog || fifth.HasFullDuration {
		t.Fatalf("2024-03-05 = hasLog %t, hasFullDuration %t; want true, false", fifth.HasLog, fifth.HasFullDuration)
	}

	sixth := byDate["2024-03-06"]
	if sixth.HasLog || !sixth.Duration.IsZero() {
		t.Fatalf("2024-03-06 should be empty, got duration %s", sixth.Duration)
	}
}

func TestBuildMonthGridSingleFullEntryMarksFullDuration(t *testing.T) {
	t.Parallel()

	entries := []models.WorkLogEntry{testEntry(t, "2024-03-11", "1.00")}

	for _, cell := range BuildMonthGrid(time.March, 2024, entries, time.UTC) {
		if cell.DateString == "2024-03-11" {
			if !cell.HasFullDuration {
				t.Fatal("a single 1.00 entry should mark the day as full")
			}
			return
		}
	}
	t.Fatal("2024-03-11 missing from grid")
}

func TestBuildMonthGridNormalizesEntryTimestamps(t *testing.T) {
	t.Parallel()

	entry := testEntry(t, "2024-03-11", "0.75")
	entry.Date = entry.Date.Add(15 * time.Hour)

	for _, cell := range BuildMonthGrid(time.March, 2024, []models.WorkLogEntry{entry}, time.UTC) {
		if cell.DateString == "2024-03-11" {
			if !cell.HasLog {
				t.Fatal("entry with a time component should still match its calendar day")
			}
			return
		}
	}
	t.Fatal("2024-03-11 missing from grid")
}
