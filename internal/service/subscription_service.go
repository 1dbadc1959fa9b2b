package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/repository"
)

// SubscriptionService manages plan subscriptions
type SubscriptionService struct {
	subscriptions repository.SubscriptionRepository
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(subscriptions repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions}
}

// Create registers a new active subscription
func (s *SubscriptionService) Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (*domain.Subscription, error) {
	now := time.Now()
	sub := &domain.Subscription{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     normalizeEmail(req.Email),
		Plan:      req.Plan,
		Status:    domain.SubscriptionActive,
		StartDate: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return sub, nil
}

// Get returns a single subscription
func (s *SubscriptionService) Get(ctx context.Context, id string) (*domain.Subscription, error) {
	sub, err := s.subscriptions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, ErrNotFound
	}
	return sub, nil
}

// List returns all subscriptions for the admin panel
func (s *SubscriptionService) List(ctx context.Context) ([]*domain.Subscription, error) {
	return s.subscriptions.List(ctx)
}

// UpdateStatus moves a subscription to a new lifecycle state
func (s *SubscriptionService) UpdateStatus(ctx context.Context, id string, status domain.SubscriptionStatus) (*domain.Subscription, error) {
	sub, err := s.subscriptions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, ErrNotFound
	}

	if err := s.subscriptions.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update subscription status: %w", err)
	}
	sub.Status = status
	return sub, nil
}

// Delete removes a subscription
func (s *SubscriptionService) Delete(ctx context.Context, id string) error {
	sub, err := s.subscriptions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return ErrNotFound
	}
	return s.subscriptions.Delete(ctx, id)
}
