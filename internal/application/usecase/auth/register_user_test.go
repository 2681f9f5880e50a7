package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

type fakeUserRepo struct {
	usersByEmail map[string]*entity.User
	adminExists  bool
	created      *entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{usersByEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.usersByEmail[user.Email] = user
	f.created = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, errors.New("record not found")
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if user, ok := f.usersByEmail[email]; ok {
		return user, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.usersByEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ExistsByRole(ctx context.Context, role entity.UserRole) (bool, error) {
	if role == entity.UserRoleAdmin {
		return f.adminExists, nil
	}
	return false, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

type fakePasswordService struct{}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (f *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type fakeTokenService struct{}

func (f *fakeTokenService) GenerateTokenPair(ctx context.Context, user *entity.User) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("invalid token")
}

func (f *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("invalid token")
}

func (f *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return nil
}

func (f *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return false, nil
}

func TestRegisterUser_FirstAdminBootstraps(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "owner@trackbill.test",
		Name:     "Owner",
		Password: "str0ng-passw0rd",
		Role:     entity.UserRoleAdmin,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.User.Role != entity.UserRoleAdmin {
		t.Errorf("role = %s, want %s", output.User.Role, entity.UserRoleAdmin)
	}
	if output.AccessToken == "" {
		t.Error("access token was not issued")
	}
}

func TestRegisterUser_AdminRegistrationClosesAfterFirst(t *testing.T) {
	repo := newFakeUserRepo()
	repo.adminExists = true
	uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "second@trackbill.test",
		Name:     "Second",
		Password: "str0ng-passw0rd",
		Role:     entity.UserRoleAdmin,
	})
	if err == nil {
		t.Fatal("Execute() succeeded, want error")
	}

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error type = %T, want *domainerror.AuthError", err)
	}
	if authErr.Code != domainerror.ErrCodeAdminRegistrationClosed {
		t.Errorf("code = %s, want %s", authErr.Code, domainerror.ErrCodeAdminRegistrationClosed)
	}
	if repo.created != nil {
		t.Error("user was persisted despite rejection")
	}
}

func TestRegisterUser_WorkerAllowedWhenAdminExists(t *testing.T) {
	repo := newFakeUserRepo()
	repo.adminExists = true
	uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "worker@trackbill.test",
		Name:     "Worker",
		Password: "str0ng-passw0rd",
		Role:     entity.UserRoleWorker,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.User.Role != entity.UserRoleWorker {
		t.Errorf("role = %s, want %s", output.User.Role, entity.UserRoleWorker)
	}
}

func TestRegisterUser_ClientWithoutBrandRejected(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "client@trackbill.test",
		Name:     "Client",
		Password: "str0ng-passw0rd",
		Role:     entity.UserRoleClient,
	})
	if err == nil {
		t.Fatal("Execute() succeeded, want error")
	}

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error type = %T, want *domainerror.AuthError", err)
	}
	if authErr.Code != domainerror.ErrCodeMissingBrand {
		t.Errorf("code = %s, want %s", authErr.Code, domainerror.ErrCodeMissingBrand)
	}
	if repo.created != nil {
		t.Error("user was persisted despite rejection")
	}
}

func TestRegisterUser_ClientWithBrandAccepted(t *testing.T) {
	repo := newFakeUserRepo()
	brandID := uuid.New()
	uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "client@trackbill.test",
		Name:     "Client",
		Password: "str0ng-passw0rd",
		Role:     entity.UserRoleClient,
		BrandID:  &brandID,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.User.BrandID == nil || *output.User.BrandID != brandID {
		t.Error("brand was not linked to the client user")
	}
}
