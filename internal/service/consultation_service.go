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

// ConsultationService manages consultation requests from the public site
type ConsultationService struct {
	consultations repository.ConsultationRepository
}

// NewConsultationService creates a new ConsultationService
func NewConsultationService(consultations repository.ConsultationRepository) *ConsultationService {
	return &ConsultationService{consultations: consultations}
}

// Create records a new consultation request in pending state
func (s *ConsultationService) Create(ctx context.Context, req *dto.CreateConsultationRequest) (*domain.Consultation, error) {
	now := time.Now()
	c := &domain.Consultation{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     normalizeEmail(req.Email),
		Phone:     req.Phone,
		Service:   req.Service,
		Message:   req.Message,
		Status:    domain.ConsultationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.consultations.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}
	return c, nil
}

// Get returns a single consultation request
func (s *ConsultationService) Get(ctx context.Context, id string) (*domain.Consultation, error) {
	c, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// List returns all consultation requests for the admin panel
func (s *ConsultationService) List(ctx context.Context) ([]*domain.Consultation, error) {
	return s.consultations.List(ctx)
}

// UpdateStatus moves a consultation request to a new handling state
func (s *ConsultationService) UpdateStatus(ctx context.Context, id string, status domain.ConsultationStatus) (*domain.Consultation, error) {
	c, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	if c == nil {
		return nil, ErrNotFound
	}

	if err := s.consultations.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update consultation status: %w", err)
	}
	c.Status = status
	return c, nil
}

// Delete removes a consultation request
func (s *ConsultationService) Delete(ctx context.Context, id string) error {
	c, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get consultation: %w", err)
	}
	if c == nil {
		return ErrNotFound
	}
	return s.consultations.Delete(ctx, id)
}
