package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/logger"
	"github.com/tasfirul8269/frooxi-backend/internal/repository"
	"github.com/tasfirul8269/frooxi-backend/internal/storage"
	"github.com/tasfirul8269/frooxi-backend/internal/telemetry"
	"go.uber.org/zap"
)

// TestimonialService manages client testimonials
type TestimonialService struct {
	testimonials repository.TestimonialRepository
	images       storage.ObjectStorage
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(testimonials repository.TestimonialRepository, images storage.ObjectStorage) *TestimonialService {
	return &TestimonialService{testimonials: testimonials, images: images}
}

// Create stores a new testimonial with an optional avatar image
func (s *TestimonialService) Create(ctx context.Context, req *dto.CreateTestimonialRequest, image *ImageUpload) (*domain.Testimonial, error) {
	ctx, span := telemetry.StartSpan(ctx, "TestimonialService.Create")
	defer span.End()

	var imageURL, imageKey string
	if image != nil {
		key := objectKey("testimonials", image.Filename)
		url, err := s.images.Upload(ctx, key, image.ContentType, image.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL, imageKey = url, key
	}

	now := time.Now()
	t := &domain.Testimonial{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Position:  req.Position,
		Company:   req.Company,
		Content:   req.Content,
		Rating:    req.Rating,
		ImageURL:  imageURL,
		ImageKey:  imageKey,
		IsActive:  true,
		Featured:  req.Featured,
		Order:     req.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.testimonials.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return t, nil
}

// Get returns a single testimonial
func (s *TestimonialService) Get(ctx context.Context, id string) (*domain.Testimonial, error) {
	t, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// List returns testimonials. Public callers see only active ones.
func (s *TestimonialService) List(ctx context.Context, includeInactive bool) ([]*domain.Testimonial, error) {
	return s.testimonials.List(ctx, !includeInactive)
}

// Update applies a partial update with optional image replacement
func (s *TestimonialService) Update(ctx context.Context, id string, req *dto.UpdateTestimonialRequest, image *ImageUpload) (*domain.Testimonial, error) {
	ctx, span := telemetry.StartSpan(ctx, "TestimonialService.Update")
	defer span.End()

	t, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	if t == nil {
		return nil, ErrNotFound
	}

	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Position != "" {
		t.Position = req.Position
	}
	if req.Company != "" {
		t.Company = req.Company
	}
	if req.Content != "" {
		t.Content = req.Content
	}
	if req.Rating != nil {
		t.Rating = *req.Rating
	}
	if req.Featured != nil {
		t.Featured = *req.Featured
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if req.Order != nil {
		t.Order = *req.Order
	}

	oldKey := ""
	if image != nil {
		key := objectKey("testimonials", image.Filename)
		url, err := s.images.Upload(ctx, key, image.ContentType, image.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		oldKey = t.ImageKey
		t.ImageURL = url
		t.ImageKey = key
	}

	if err := s.testimonials.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}

	if oldKey != "" {
		if err := s.images.Delete(ctx, oldKey); err != nil {
			logger.Get().Warn("failed to delete replaced image",
				zap.String("key", oldKey), zap.Error(err))
		}
	}
	return t, nil
}

// Delete removes a testimonial and its stored image
func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	t, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get testimonial: %w", err)
	}
	if t == nil {
		return ErrNotFound
	}

	if err := s.testimonials.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	if t.ImageKey != "" {
		if err := s.images.Delete(ctx, t.ImageKey); err != nil {
			logger.Get().Warn("failed to delete image",
				zap.String("key", t.ImageKey), zap.Error(err))
		}
	}
	return nil
}
