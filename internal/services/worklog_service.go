package services

import (
	"errors"
	"strings"
	"time"

	"github.com/nordvik/inkwell/internal/models"
)

var (
	ErrInvalidDuration    = errors.New("duration must be between 0.01 and 1.00")
	ErrMissingProjectCode = errors.New("project code is required")
	ErrEntryNotFound      = errors.New("work log entry not found")
	ErrEntryNotOwned      = errors.New("work log entry belongs to another user")
)

type EntryInput struct {
	Date          time.Time
	ProjectCode   string
	Description   string
	ContactPerson string
	Duration      string
	LogTime       bool
	IsLeaveDay    bool
}

type WorkLogEntryRepository interface {
	ListByOwnerRange(ownerID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.WorkLogEntry, error)
	FindByID(entryID string) (models.WorkLogEntry, bool, error)
	Create(entry *models.WorkLogEntry) error
	Save(entry *models.WorkLogEntry) error
	Delete(entryID string) error
}

type WorkLogService struct {
	entries  WorkLogEntryRepository
	location *time.Location
}

func NewWorkLogService(entries WorkLogEntryRepository, location *time.Location) *WorkLogService {
	if location == nil {
		location = time.UTC
	}
	return &WorkLogService{entries: entries, location: location}
}

// FetchEntriesForCycle loads the owner's entries with dates inside the
// inclusive cycle window, ordered by date ascending.
func (service *WorkLogService) FetchEntriesForCycle(ownerID uint, cycle BillingCycle) ([]models.WorkLogEntry, error) {
	rangeStart, _ := DayRange(cycle.Start, service.location)
	_, rangeEnd := DayRange(cycle.End, service.location)
	return service.entries.ListByOwnerRange(ownerID, rangeStart, rangeEnd)
}

func (service *WorkLogService) CreateEntry(ownerID uint, input EntryInput) (models.WorkLogEntry, error) {
	entry, err := service.buildEntry(ownerID, input)
	if err != nil {
		return models.WorkLogEntry{}, err
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.WorkLogEntry{}, err
	}
	return entry, nil
}

// UpdateEntry replaces every editable field of an existing entry. Partial
// updates are not supported; the edit form always submits the full record.
func (service *WorkLogService) UpdateEntry(ownerID uint, entryID string, input EntryInput) (models.WorkLogEntry, error) {
	existing, found, err := service.entries.FindByID(entryID)
	if err != nil {
		return models.WorkLogEntry{}, err
	}
	if !found {
		return models.WorkLogEntry{}, ErrEntryNotFound
	}
	if existing.OwnerID != ownerID {
		return models.WorkLogEntry{}, ErrEntryNotOwned
	}

	replacement, err := service.buildEntry(ownerID, input)
	if err != nil {
		return models.WorkLogEntry{}, err
	}

	existing.Date = replacement.Date
	existing.ProjectCode = replacement.ProjectCode
	existing.Description = replacement.Description
	existing.ContactPerson = replacement.ContactPerson
	existing.Duration = replacement.Duration
	existing.LogTime = replacement.LogTime
	existing.IsLeaveDay = replacement.IsLeaveDay

	if err := service.entries.Save(&existing); err != nil {
		return models.WorkLogEntry{}, err
	}
	return existing, nil
}

func (service *WorkLogService) DeleteEntry(ownerID uint, entryID string) error {
	existing, found, err := service.entries.FindByID(entryID)
	if err != nil {
		return err
	}
	if !found {
		return ErrEntryNotFound
	}
	if existing.OwnerID != ownerID {
		return ErrEntryNotOwned
	}
	return service.entries.Delete(entryID)
}

// buildEntry validates the submitted fields and normalizes them into a
// persistable entry. Leave days ignore the submitted duration and project
// code: a leave entry always covers the full day under the LEAVE sentinel.
func (service *WorkLogService) buildEntry(ownerID uint, input EntryInput) (models.WorkLogEntry, error) {
	entry := models.WorkLogEntry{
		OwnerID:       ownerID,
		Date:          DateAtLocation(input.Date, service.location),
		Description:   strings.TrimSpace(input.Description),
		ContactPerson: strings.TrimSpace(input.ContactPerson),
		LogTime:       input.LogTime,
		IsLeaveDay:    input.IsLeaveDay,
	}

	if input.IsLeaveDay {
		entry.ProjectCode = models.LeaveProjectCode
		entry.Duration = models.FullDayDuration
		return entry, nil
	}

	entry.ProjectCode = strings.TrimSpace(input.ProjectCode)
	if entry.ProjectCode == "" {
		return models.WorkLogEntry{}, ErrMissingProjectCode
	}

	duration, err := ParseDuration(input.Duration)
	if err != nil {
		return models.WorkLogEntry{}, err
	}
	entry.Duration = duration
	return entry, nil
}
