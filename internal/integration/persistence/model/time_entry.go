// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/trackbill/backend/internal/domain/entity"
)

// TimeEntryModel represents the time_entries table in the database.
type TimeEntryModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProjectID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	TaskID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	WorkDate        time.Time        `gorm:"type:date;not null;index"`
	DurationMinutes int              `gorm:"not null"`
	Notes           string           `gorm:"type:text"`
	HourlyRate      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CreatedAt       time.Time        `gorm:"not null"`
	UpdatedAt       time.Time        `gorm:"not null"`
	DeletedAt       gorm.DeletedAt   `gorm:"index"`

	// Relationships (not loaded by default, use Preload)
	User    *UserModel    `gorm:"foreignKey:UserID;references:ID"`
	Project *ProjectModel `gorm:"foreignKey:ProjectID;references:ID"`
	Task    *TaskModel    `gorm:"foreignKey:TaskID;references:ID"`
}

// TableName returns the table name for the TimeEntryModel.
func (TimeEntryModel) TableName() string {
	return "time_entries"
}

// ToEntity converts a TimeEntryModel to a domain TimeEntry entity.
func (m *TimeEntryModel) ToEntity() *entity.TimeEntry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.TimeEntry{
		ID:              m.ID,
		UserID:          m.UserID,
		ProjectID:       m.ProjectID,
		TaskID:          m.TaskID,
		WorkDate:        m.WorkDate,
		DurationMinutes: m.DurationMinutes,
		Notes:           m.Notes,
		HourlyRate:      m.HourlyRate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}

// TimeEntryFromEntity creates a TimeEntryModel from a domain TimeEntry entity.
func TimeEntryFromEntity(entry *entity.TimeEntry) *TimeEntryModel {
	var deletedAt gorm.DeletedAt
	if entry.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *entry.DeletedAt, Valid: true}
	}

	return &TimeEntryModel{
		ID:              entry.ID,
		UserID:          entry.UserID,
		ProjectID:       entry.ProjectID,
		TaskID:          entry.TaskID,
		WorkDate:        entry.WorkDate,
		DurationMinutes: entry.DurationMinutes,
		Notes:           entry.Notes,
		HourlyRate:      entry.HourlyRate,
		CreatedAt:       entry.CreatedAt,
		UpdatedAt:       entry.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}
