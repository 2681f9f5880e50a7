package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
)

type fakeEntryRepo struct {
	entries []*entity.TimeEntry
}

func (f *fakeEntryRepo) Create(ctx context.Context, entry *entity.TimeEntry) error { return nil }

func (f *fakeEntryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error) {
	return nil, nil
}

func (f *fakeEntryRepo) FindByFilter(ctx context.Context, filter adapter.TimeEntryFilter, pagination adapter.TimeEntryPagination) (*entity.TimeEntryListResult, error) {
	return &entity.TimeEntryListResult{}, nil
}

func (f *fakeEntryRepo) FindAllByFilter(ctx context.Context, filter adapter.TimeEntryFilter) ([]*entity.TimeEntry, error) {
	return f.entries, nil
}

func (f *fakeEntryRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.TimeEntry, error) {
	selected := make([]*entity.TimeEntry, 0, len(ids))
	for _, entry := range f.entries {
		for _, id := range ids {
			if entry.ID == id {
				selected = append(selected, entry)
				break
			}
		}
	}
	return selected, nil
}

func (f *fakeEntryRepo) Update(ctx context.Context, entry *entity.TimeEntry) error { return nil }

func (f *fakeEntryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func summaryEntry(userID uuid.UUID, minutes int, rate string) *entity.TimeEntry {
	r := decimal.RequireFromString(rate)
	return &entity.TimeEntry{
		ID:              uuid.New(),
		UserID:          userID,
		ProjectID:       uuid.New(),
		TaskID:          uuid.New(),
		WorkDate:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		DurationMinutes: minutes,
		HourlyRate:      &r,
	}
}

func TestGetSummary_AdminSeesAllSelectedEntries(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Role: entity.UserRoleAdmin, IsActive: true}
	worker := uuid.New()
	entries := []*entity.TimeEntry{
		summaryEntry(worker, 480, "250"),
		summaryEntry(uuid.New(), 360, "300"),
	}
	uc := NewGetSummaryUseCase(&fakeEntryRepo{entries: entries})

	output, err := uc.Execute(context.Background(), GetSummaryInput{
		Caller:   admin,
		EntryIDs: []uuid.UUID{entries[0].ID, entries[1].ID},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Summary.EntriesCount != 2 {
		t.Errorf("entry count = %d, want 2", output.Summary.EntriesCount)
	}
	if got := output.Summary.TotalHours.StringFixed(1); got != "14.0" {
		t.Errorf("total hours = %s, want 14.0", got)
	}
	if got := output.Summary.TotalAmount.StringFixed(2); got != "3800.00" {
		t.Errorf("total amount = %s, want 3800.00", got)
	}
	if output.Summary.DistinctUsersCount != 2 {
		t.Errorf("user count = %d, want 2", output.Summary.DistinctUsersCount)
	}
}

func TestGetSummary_WorkerSelectionDropsForeignEntries(t *testing.T) {
	workerID := uuid.New()
	worker := &entity.User{ID: workerID, Role: entity.UserRoleWorker, IsActive: true}
	entries := []*entity.TimeEntry{
		summaryEntry(workerID, 120, "100"),
		summaryEntry(uuid.New(), 600, "500"),
	}
	uc := NewGetSummaryUseCase(&fakeEntryRepo{entries: entries})

	output, err := uc.Execute(context.Background(), GetSummaryInput{
		Caller:   worker,
		EntryIDs: []uuid.UUID{entries[0].ID, entries[1].ID},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Summary.EntriesCount != 1 {
		t.Errorf("entry count = %d, want 1", output.Summary.EntriesCount)
	}
	if got := output.Summary.TotalAmount.StringFixed(2); got != "200.00" {
		t.Errorf("total amount = %s, want 200.00", got)
	}
}

func TestGetSummary_EmptySelection(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Role: entity.UserRoleAdmin, IsActive: true}
	uc := NewGetSummaryUseCase(&fakeEntryRepo{})

	output, err := uc.Execute(context.Background(), GetSummaryInput{Caller: admin})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Summary.EntriesCount != 0 {
		t.Errorf("entry count = %d, want 0", output.Summary.EntriesCount)
	}
	if !output.Summary.TotalAmount.IsZero() {
		t.Errorf("total amount = %s, want 0", output.Summary.TotalAmount)
	}
}
