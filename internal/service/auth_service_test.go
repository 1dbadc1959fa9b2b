package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService() (*AuthService, *MockUserRepository, *TokenService) {
	users := NewMockUserRepository()
	tokens := NewTokenService("test-secret", time.Hour, "frooxi")
	return NewAuthService(users, tokens), users, tokens
}

func addTestUser(users *MockUserRepository, id, email, password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &domain.User{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	users.AddUser(u)
	return u
}

func TestAuthService_Register(t *testing.T) {
	svc, users, tokens := newTestAuthService()
	ctx := context.Background()

	result, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "Password1",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if result.Token == "" {
		t.Error("Register() returned empty token")
	}
	if result.User.Email != "alice@example.com" {
		t.Errorf("email = %q, want normalized %q", result.User.Email, "alice@example.com")
	}

	// The issued token resolves back to the new user
	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	stored, _ := users.GetByID(ctx, claims.UserID)
	if stored == nil {
		t.Fatal("registered user not persisted")
	}
	if stored.PasswordHash == "Password1" {
		t.Error("password stored in plain text")
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, users, _ := newTestAuthService()
	addTestUser(users, "user-1", "alice@example.com", "Password1")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice Again",
		Email:    "alice@example.com",
		Password: "Password1",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, users, _ := newTestAuthService()
	addTestUser(users, "user-1", "alice@example.com", "Password1")
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "alice@example.com", "Password1", nil},
		{"wrong password", "alice@example.com", "WrongPass1", ErrInvalidCredentials},
		{"unknown email", "bob@example.com", "Password1", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Login(ctx, &dto.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if result.Token == "" {
				t.Error("Login() returned empty token")
			}
		})
	}
}

func TestAuthService_LoginDisabledAccount(t *testing.T) {
	svc, users, _ := newTestAuthService()
	u := addTestUser(users, "user-1", "alice@example.com", "Password1")
	u.IsActive = false

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "Password1",
	})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("Login() error = %v, want ErrAccountDisabled", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, users, tokens := newTestAuthService()
	addTestUser(users, "user-1", "alice@example.com", "OldPass1")
	ctx := context.Background()

	// Token issued before the change
	oldToken, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Wrong current password is rejected
	err = svc.ChangePassword(ctx, "user-1", &dto.ChangePasswordRequest{
		CurrentPassword: "WrongPass1",
		NewPassword:     "NewPass1",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("ChangePassword() error = %v, want ErrWrongPassword", err)
	}

	// The iat claim has second precision, so the change must land in a
	// later second to invalidate the old token
	time.Sleep(1100 * time.Millisecond)

	err = svc.ChangePassword(ctx, "user-1", &dto.ChangePasswordRequest{
		CurrentPassword: "OldPass1",
		NewPassword:     "NewPass1",
	})
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	user, _ := users.GetByID(ctx, "user-1")
	if user.PasswordChangedAt == nil {
		t.Fatal("PasswordChangedAt not recorded")
	}

	claims, err := tokens.Verify(oldToken)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !user.ChangedPasswordAfter(claims.IssuedAt) {
		t.Error("token issued before the password change is still considered fresh")
	}

	// New credentials work, old ones do not
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "NewPass1"}); err != nil {
		t.Errorf("Login() with new password error = %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "OldPass1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with old password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, users, _ := newTestAuthService()
	addTestUser(users, "user-1", "alice@example.com", "Password1")
	addTestUser(users, "user-2", "bob@example.com", "Password1")
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, "user-1", &dto.UpdateProfileRequest{Name: "Alice B"})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Name != "Alice B" {
		t.Errorf("Name = %q, want %q", updated.Name, "Alice B")
	}

	// Cannot take another user's email
	_, err = svc.UpdateProfile(ctx, "user-1", &dto.UpdateProfileRequest{Email: "bob@example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("UpdateProfile() error = %v, want ErrEmailTaken", err)
	}
}
