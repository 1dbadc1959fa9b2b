package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/logger"
	"github.com/tasfirul8269/frooxi-backend/internal/repository"
	"github.com/tasfirul8269/frooxi-backend/internal/telemetry"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and account management
type AuthService struct {
	users  repository.UserRepository
	tokens *TokenService
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user account and returns a session token
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "AuthService.Register")
	defer span.End()

	email := normalizeEmail(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsAdmin:      false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Get().Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return s.authResponse(user)
}

// Login verifies credentials and returns a session token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "AuthService.Login")
	defer span.End()

	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		// Burn a hash comparison so missing and wrong-password lookups
		// take comparable time.
		bcrypt.CompareHashAndPassword([]byte("$2a$10$invalidhashinvalidhashinvalidhashinvalidhashinvalidha"), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	logger.Get().Info("user logged in", zap.String("user_id", user.ID))

	return s.authResponse(user)
}

// GetProfile returns the user for the given ID
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile updates name and email for the given user
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "AuthService.UpdateProfile")
	defer span.End()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		email := normalizeEmail(req.Email)
		if email != user.Email {
			exists, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if exists {
				return nil, ErrEmailTaken
			}
			user.Email = email
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the current password, stores the new hash and
// records the change time. Tokens issued before the change become invalid.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	ctx, span := telemetry.StartSpan(ctx, "AuthService.ChangePassword")
	defer span.End()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash), time.Now()); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Get().Info("password changed", zap.String("user_id", userID))
	return nil
}

// ListUsers returns a page of users for the admin panel
func (s *AuthService) ListUsers(ctx context.Context, page, limit int) ([]*domain.User, int64, error) {
	page, limit = dto.NormalizePage(page, limit)
	return s.users.List(ctx, page, limit)
}

// SetUserActive enables or disables a user account
func (s *AuthService) SetUserActive(ctx context.Context, userID string, active bool) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.IsActive = active
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user account
func (s *AuthService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.users.Delete(ctx, userID)
}

func (s *AuthService) authResponse(user *domain.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
		User:      ToUserResponse(user),
	}, nil
}

// ToUserResponse converts a domain user to its response shape
func ToUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
