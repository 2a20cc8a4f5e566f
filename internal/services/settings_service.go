package services

import (
	"time"

	"github.com/nordvik/inkwell/internal/models"
)

type CycleSettingsRepository interface {
	FindByOwner(ownerID uint) (models.CycleSettings, bool, error)
	Insert(settings *models.CycleSettings) error
	UpdateCycle(ownerID uint, settings models.CycleSettings) error
	IsDuplicateKey(err error) bool
}

type CycleSettingsService struct {
	settings CycleSettingsRepository
	location *time.Location
}

func NewCycleSettingsService(settings CycleSettingsRepository, location *time.Location) *CycleSettingsService {
	if location == nil {
		location = time.UTC
	}
	return &CycleSettingsService{settings: settings, location: location}
}

// ActiveCycle returns the owner's persisted cycle, creating the default
// cycle for the current month on first load. The insert may lose a race
// against another first-time load; the unique index on owner_id turns that
// into a duplicate-key error, which is handled by re-reading the winner's
// row rather than failing.
func (service *CycleSettingsService) ActiveCycle(ownerID uint, now time.Time) (models.CycleSettings, BillingCycle, error) {
	persisted, found, err := service.settings.FindByOwner(ownerID)
	if err != nil {
		return models.CycleSettings{}, BillingCycle{}, err
	}
	if found {
		return persisted, service.cycleFromSettings(persisted), nil
	}

	today := DateAtLocation(now, service.location)
	cycle := DefaultCycle(today.Month(), today.Year(), service.location)
	fresh := models.CycleSettings{
		OwnerID:        ownerID,
		StartDate:      cycle.Start,
		EndDate:        cycle.End,
		ReferenceMonth: int(today.Month()),
		ReferenceYear:  today.Year(),
	}

	if err := service.settings.Insert(&fresh); err != nil {
		if !service.settings.IsDuplicateKey(err) {
			return models.CycleSettings{}, BillingCycle{}, err
		}
		winner, _, findErr := service.settings.FindByOwner(ownerID)
		if findErr != nil {
			return models.CycleSettings{}, BillingCycle{}, findErr
		}
		return winner, service.cycleFromSettings(winner), nil
	}

	return fresh, cycle, nil
}

// SelectMonth recomputes the default cycle for the chosen reference month
// and persists it as the owner's active cycle.
func (service *CycleSettingsService) SelectMonth(ownerID uint, month time.Month, year int) (models.CycleSettings, BillingCycle, error) {
	cycle := DefaultCycle(month, year, service.location)
	settings := models.CycleSettings{
		OwnerID:        ownerID,
		StartDate:      cycle.Start,
		EndDate:        cycle.End,
		ReferenceMonth: int(month),
		ReferenceYear:  year,
	}
	if err := service.persist(ownerID, &settings); err != nil {
		return models.CycleSettings{}, BillingCycle{}, err
	}
	return settings, cycle, nil
}

// SelectCustomRange validates and persists an explicit cycle window. The
// reference month/year follow the range end so the calendar still knows
// which month to display. A rejected range leaves the previous cycle active.
func (service *CycleSettingsService) SelectCustomRange(ownerID uint, start time.Time, end time.Time) (models.CycleSettings, BillingCycle, error) {
	cycle, err := CustomCycle(start, end, service.location)
	if err != nil {
		return models.CycleSettings{}, BillingCycle{}, err
	}

	settings := models.CycleSettings{
		OwnerID:        ownerID,
		StartDate:      cycle.Start,
		EndDate:        cycle.End,
		ReferenceMonth: int(cycle.End.Month()),
		ReferenceYear:  cycle.End.Year(),
	}
	if err := service.persist(ownerID, &settings); err != nil {
		return models.CycleSettings{}, BillingCycle{}, err
	}
	return settings, cycle, nil
}

func (service *CycleSettingsService) persist(ownerID uint, settings *models.CycleSettings) error {
	_, found, err := service.settings.FindByOwner(ownerID)
	if err != nil {
		return err
	}
	if found {
		return service.settings.UpdateCycle(ownerID, *settings)
	}

	if err := service.settings.Insert(settings); err != nil {
		if !service.settings.IsDuplicateKey(err) {
			return err
		}
		return service.settings.UpdateCycle(ownerID, *settings)
	}
	return nil
}

func (service *CycleSettingsService) cycleFromSettings(settings models.CycleSettings) BillingCycle {
	start := DateAtLocation(settings.StartDate, service.location)
	end := DateAtLocation(settings.EndDate, service.location)
	return BillingCycle{
		Start:        start,
		End:          end,
		BusinessDays: CountBusinessDays(start, end),
	}
}
