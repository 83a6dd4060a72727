package service

import (
	"context"
	"errors"
	"testing"

	"go-gin-blog/internal/domain"
	"go-gin-blog/pkg/utils"
)

type fakeUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if _, ok := f.users[u.Email]; ok {
		return errors.New("UNIQUE constraint failed: users.email")
	}
	cp := *u
	f.users[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]domain.User, int64, error) {
	var out []domain.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) SoftDelete(_ context.Context, id string) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return errors.New("record not found")
}

func TestRegister(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)

	u, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Role != domain.RoleUser {
		t.Errorf("Role = %q, want %q", u.Role, domain.RoleUser)
	}
	if u.PasswordHash == "secret" || u.PasswordHash == "" {
		t.Error("password must be stored as a hash")
	}
	if !utils.CheckPassword("secret", u.PasswordHash) {
		t.Error("hash should verify against the original password")
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)

	if _, err := svc.Register(context.Background(), "", "", "pw"); err == nil {
		t.Error("expected error for empty email")
	}
	if _, err := svc.Register(context.Background(), "", "a@b.c", ""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestRegister_DefaultNameFromEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)

	u, err := svc.Register(context.Background(), "", "bob@example.com", "pw")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Name != "bob" {
		t.Errorf("Name = %q, want %q", u.Name, "bob")
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)

	if _, err := svc.Register(context.Background(), "A", "a@example.com", "pw"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(context.Background(), "B", "a@example.com", "pw")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)
	if _, err := svc.Register(context.Background(), "A", "a@example.com", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(context.Background(), "a@example.com", "pw"); err != nil {
		t.Errorf("Login with correct password: %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)
	ctx := context.Background()

	first, err := svc.EnsureAdmin(ctx, "Admin", "admin@example.com", "123456")
	if err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	if !first.IsAdmin() {
		t.Error("seeded user should be admin")
	}

	second, err := svc.EnsureAdmin(ctx, "Admin", "admin@example.com", "123456")
	if err != nil {
		t.Fatalf("EnsureAdmin (second): %v", err)
	}
	if second.ID != first.ID {
		t.Error("second call must not create another admin")
	}
}

func TestIsDupKey(t *testing.T) {
	if !isDupKey(errors.New("UNIQUE constraint failed: users.email")) {
		t.Error("sqlite unique violation should be detected")
	}
	if !isDupKey(errors.New("Error 1062: Duplicate entry 'a@b.c' for key 'email'")) {
		t.Error("mysql duplicate entry should be detected")
	}
	if isDupKey(errors.New("connection refused")) {
		t.Error("unrelated error must not be treated as duplicate")
	}
}
