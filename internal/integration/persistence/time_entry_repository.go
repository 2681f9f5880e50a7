// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
	"github.com/trackbill/backend/internal/integration/persistence/model"
)

// timeEntryRepository implements the adapter.TimeEntryRepository interface.
type timeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new time entry repository instance.
func NewTimeEntryRepository(db *gorm.DB) adapter.TimeEntryRepository {
	return &timeEntryRepository{
		db: db,
	}
}

// Create creates a new time entry in the database.
func (r *timeEntryRepository) Create(ctx context.Context, entry *entity.TimeEntry) error {
	entryModel := model.TimeEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a time entry by its ID.
func (r *timeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error) {
	var entryModel model.TimeEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTimeEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// applyFilter narrows the query to the filter criteria.
func applyTimeEntryFilter(query *gorm.DB, filter adapter.TimeEntryFilter) *gorm.DB {
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.TaskID != nil {
		query = query.Where("task_id = ?", *filter.TaskID)
	}
	if filter.StartDate != nil {
		query = query.Where("work_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("work_date <= ?", filter.EndDate)
	}
	return query
}

// FindByFilter retrieves time entries based on filter criteria with pagination.
func (r *timeEntryRepository) FindByFilter(ctx context.Context, filter adapter.TimeEntryFilter, pagination adapter.TimeEntryPagination) (*entity.TimeEntryListResult, error) {
	query := applyTimeEntryFilter(r.db.WithContext(ctx).Model(&model.TimeEntryModel{}), filter)

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var entryModels []model.TimeEntryModel
	result := query.
		Order("work_date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.TimeEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}

	return &entity.TimeEntryListResult{
		Entries:    entries,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// FindAllByFilter retrieves every entry matching the filter for aggregation.
func (r *timeEntryRepository) FindAllByFilter(ctx context.Context, filter adapter.TimeEntryFilter) ([]*entity.TimeEntry, error) {
	query := applyTimeEntryFilter(r.db.WithContext(ctx).Model(&model.TimeEntryModel{}), filter)

	var entryModels []model.TimeEntryModel
	result := query.
		Order("work_date DESC, created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.TimeEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindByIDs retrieves the entries with the given IDs.
func (r *timeEntryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.TimeEntry, error) {
	if len(ids) == 0 {
		return []*entity.TimeEntry{}, nil
	}

	var entryModels []model.TimeEntryModel
	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("work_date DESC, created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.TimeEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// Update updates an existing time entry in the database.
func (r *timeEntryRepository) Update(ctx context.Context, entry *entity.TimeEntry) error {
	entryModel := model.TimeEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a time entry from the database.
func (r *timeEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TimeEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
