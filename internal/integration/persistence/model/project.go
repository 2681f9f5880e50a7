// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/trackbill/backend/internal/domain/entity"
)

// ProjectModel represents the projects table in the database.
type ProjectModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BrandID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(10);not null;default:'active';index"`
	// WorkerIDs is stored as a uuid[] column. Assignment lookups filter it
	// with the array containment operator.
	WorkerIDs pq.StringArray `gorm:"type:uuid[]"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Brand *BrandModel `gorm:"foreignKey:BrandID;references:ID"`
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts a ProjectModel to a domain Project entity. Malformed
// worker IDs are skipped rather than failing the whole row.
func (m *ProjectModel) ToEntity() *entity.Project {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	workerIDs := make([]uuid.UUID, 0, len(m.WorkerIDs))
	for _, raw := range m.WorkerIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		workerIDs = append(workerIDs, id)
	}

	return &entity.Project{
		ID:          m.ID,
		BrandID:     m.BrandID,
		Name:        m.Name,
		Description: m.Description,
		Status:      entity.ProjectStatus(m.Status),
		WorkerIDs:   workerIDs,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// ProjectFromEntity creates a ProjectModel from a domain Project entity.
func ProjectFromEntity(project *entity.Project) *ProjectModel {
	var deletedAt gorm.DeletedAt
	if project.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *project.DeletedAt, Valid: true}
	}

	workerIDs := make(pq.StringArray, len(project.WorkerIDs))
	for i, id := range project.WorkerIDs {
		workerIDs[i] = id.String()
	}

	return &ProjectModel{
		ID:          project.ID,
		BrandID:     project.BrandID,
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		WorkerIDs:   workerIDs,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
