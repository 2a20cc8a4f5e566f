package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LeaveProjectCode is the sentinel project code carried by leave-day entries.
const LeaveProjectCode = "LEAVE"

var (
	MinEntryDuration = decimal.New(1, -2) // 0.01
	FullDayDuration  = decimal.New(1, 0)  // 1.00
)

type WorkLogEntry struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	OwnerID       uint            `gorm:"not null;index:idx_worklog_owner_date" json:"owner_id"`
	Date          time.Time       `gorm:"type:date;not null;index:idx_worklog_owner_date" json:"date"`
	ProjectCode   string          `gorm:"not null" json:"project_code"`
	Description   string          `json:"description"`
	ContactPerson string          `json:"contact_person"`
	Duration      decimal.Decimal `gorm:"type:decimal(4,2);not null" json:"duration"`
	LogTime       bool            `gorm:"not null;default:false" json:"log_time"`
	IsLeaveDay    bool            `gorm:"not null;default:false" json:"is_leave_day"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (entry *WorkLogEntry) BeforeCreate(tx *gorm.DB) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return nil
}

type CycleSettings struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OwnerID        uint      `gorm:"uniqueIndex;not null" json:"owner_id"`
	StartDate      time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null" json:"end_date"`
	ReferenceMonth int       `gorm:"not null" json:"reference_month"`
	ReferenceYear  int       `gorm:"not null" json:"reference_year"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
