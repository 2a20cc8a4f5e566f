package db

import (
	"errors"
	"strings"

	"github.com/nordvik/inkwell/internal/models"
	"gorm.io/gorm"
)

type CycleSettingsRepository struct {
	database *gorm.DB
}

func NewCycleSettingsRepository(database *gorm.DB) *CycleSettingsRepository {
	return &CycleSettingsRepository{database: database}
}

func (repo *CycleSettingsRepository) FindByOwner(ownerID uint) (models.CycleSettings, bool, error) {
	settings := models.CycleSettings{}
	result := repo.database.Where("owner_id = ?", ownerID).Limit(1).Find(&settings)
	if result.Error != nil {
		return models.CycleSettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleSettings{}, false, nil
	}
	return settings, true, nil
}

func (repo *CycleSettingsRepository) Insert(settings *models.CycleSettings) error {
	return repo.database.Create(settings).Error
}

func (repo *CycleSettingsRepository) UpdateCycle(ownerID uint, settings models.CycleSettings) error {
	return repo.database.Model(&models.CycleSettings{}).Where("owner_id = ?", ownerID).Updates(map[string]any{
		"start_date":      settings.StartDate,
		"end_date":        settings.EndDate,
		"reference_month": settings.ReferenceMonth,
		"reference_year":  settings.ReferenceYear,
	}).Error
}

// IsDuplicateKey reports whether err is a unique-constraint violation. The
// owner_id unique index makes this the signal for "settings already exist":
// two near-simultaneous first-time loads both pass the existence check, and
// the loser of the insert must fall back to an update instead of failing.
func (repo *CycleSettingsRepository) IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
