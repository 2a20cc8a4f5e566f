package db

import (
	"time"

	"github.com/nordvik/inkwell/internal/models"
	"gorm.io/gorm"
)

type WorkLogRepository struct {
	database *gorm.DB
}

func NewWorkLogRepository(database *gorm.DB) *WorkLogRepository {
	return &WorkLogRepository{database: database}
}

// ListByOwnerRange returns the owner's entries with dates inside [rangeStart, rangeEnd),
// ordered by date ascending.
func (repo *WorkLogRepository) ListByOwnerRange(ownerID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.WorkLogEntry, error) {
	entries := make([]models.WorkLogEntry, 0)
	if err := repo.database.
		Where("owner_id = ? AND date >= ? AND date < ?", ownerID, rangeStart, rangeEnd).
		Order("date ASC, created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WorkLogRepository) FindByID(entryID string) (models.WorkLogEntry, bool, error) {
	entry := models.WorkLogEntry{}
	result := repo.database.Where("id = ?", entryID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.WorkLogEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WorkLogEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *WorkLogRepository) Create(entry *models.WorkLogEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *WorkLogRepository) Save(entry *models.WorkLogEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *WorkLogRepository) Delete(entryID string) error {
	return repo.database.Where("id = ?", entryID).Delete(&models.WorkLogEntry{}).Error
}
