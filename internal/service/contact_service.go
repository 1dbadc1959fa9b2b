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

// ContactService manages contact form submissions
type ContactService struct {
	contacts repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// Create records a new contact message in new state
func (s *ContactService) Create(ctx context.Context, req *dto.CreateContactRequest) (*domain.ContactMessage, error) {
	now := time.Now()
	m := &domain.ContactMessage{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     normalizeEmail(req.Email),
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    domain.ContactNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.contacts.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}
	return m, nil
}

// Get returns a single contact message
func (s *ContactService) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	m, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// List returns all contact messages for the admin panel
func (s *ContactService) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.contacts.List(ctx)
}

// UpdateStatus moves a contact message to a new handling state
func (s *ContactService) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.ContactMessage, error) {
	m, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	if m == nil {
		return nil, ErrNotFound
	}

	if err := s.contacts.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}
	m.Status = status
	return m, nil
}

// Delete removes a contact message
func (s *ContactService) Delete(ctx context.Context, id string) error {
	m, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get contact message: %w", err)
	}
	if m == nil {
		return ErrNotFound
	}
	return s.contacts.Delete(ctx, id)
}
