package project

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// fakeProjectStore honors the filter so role scoping is observable.
type fakeProjectStore struct {
	projects []*entity.Project
}

func (f *fakeProjectStore) Create(ctx context.Context, project *entity.Project) error { return nil }

func (f *fakeProjectStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	return nil, errors.New("record not found")
}

func (f *fakeProjectStore) FindByFilter(ctx context.Context, filter adapter.ProjectFilter) ([]*entity.Project, error) {
	matched := make([]*entity.Project, 0, len(f.projects))
	for _, p := range f.projects {
		if filter.BrandID != nil && p.BrandID != *filter.BrandID {
			continue
		}
		if filter.WorkerID != nil && !p.HasWorker(*filter.WorkerID) {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func (f *fakeProjectStore) Update(ctx context.Context, project *entity.Project) error { return nil }

func (f *fakeProjectStore) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func twoBrandProjects() (*fakeProjectStore, uuid.UUID, uuid.UUID) {
	brandA := uuid.New()
	brandB := uuid.New()
	return &fakeProjectStore{
		projects: []*entity.Project{
			entity.NewProject(brandA, "Website", "", nil),
			entity.NewProject(brandB, "Mobile App", "", nil),
		},
	}, brandA, brandB
}

func TestListProjects_ClientScopedToOwnBrand(t *testing.T) {
	store, _, brandB := twoBrandProjects()
	client := &entity.User{ID: uuid.New(), Role: entity.UserRoleClient, BrandID: &brandB, IsActive: true}
	uc := NewListProjectsUseCase(store)

	output, err := uc.Execute(context.Background(), ListProjectsInput{Caller: client})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Projects) != 1 {
		t.Fatalf("listed %d projects, want 1", len(output.Projects))
	}
	if output.Projects[0].BrandID != brandB {
		t.Error("listed a project from another brand")
	}
}

func TestListProjects_ClientWithoutBrandRefused(t *testing.T) {
	store, _, _ := twoBrandProjects()
	client := &entity.User{ID: uuid.New(), Role: entity.UserRoleClient, IsActive: true}
	uc := NewListProjectsUseCase(store)

	_, err := uc.Execute(context.Background(), ListProjectsInput{Caller: client})
	if err == nil {
		t.Fatal("Execute() succeeded, want error")
	}

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error type = %T, want *domainerror.AuthError", err)
	}
	if authErr.Code != domainerror.ErrCodeForbidden {
		t.Errorf("code = %s, want %s", authErr.Code, domainerror.ErrCodeForbidden)
	}
}

func TestListProjects_WorkerScopedToAssignments(t *testing.T) {
	brandA := uuid.New()
	workerID := uuid.New()
	store := &fakeProjectStore{
		projects: []*entity.Project{
			entity.NewProject(brandA, "Assigned", "", []uuid.UUID{workerID}),
			entity.NewProject(brandA, "Unassigned", "", nil),
		},
	}
	worker := &entity.User{ID: workerID, Role: entity.UserRoleWorker, IsActive: true}
	uc := NewListProjectsUseCase(store)

	output, err := uc.Execute(context.Background(), ListProjectsInput{Caller: worker})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(output.Projects) != 1 || output.Projects[0].Name != "Assigned" {
		t.Errorf("listed %d projects, want only the assigned one", len(output.Projects))
	}
}

func TestListProjects_AdminSeesAllBrands(t *testing.T) {
	store, _, _ := twoBrandProjects()
	admin := &entity.User{ID: uuid.New(), Role: entity.UserRoleAdmin, IsActive: true}
	uc := NewListProjectsUseCase(store)

	output, err := uc.Execute(context.Background(), ListProjectsInput{Caller: admin})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(output.Projects) != 2 {
		t.Errorf("listed %d projects, want 2", len(output.Projects))
	}
}
