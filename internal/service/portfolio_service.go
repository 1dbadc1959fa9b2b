package service

import (
	"context"
	"fmt"
	"io"
	"path"
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

// ImageUpload carries an uploaded image towards object storage
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// PortfolioService manages portfolio items and their images
type PortfolioService struct {
	items  repository.PortfolioRepository
	images storage.ObjectStorage
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(items repository.PortfolioRepository, images storage.ObjectStorage) *PortfolioService {
	return &PortfolioService{items: items, images: images}
}

// Create stores a new portfolio item, uploading its image first
func (s *PortfolioService) Create(ctx context.Context, req *dto.CreatePortfolioRequest, image *ImageUpload) (*domain.PortfolioItem, error) {
	ctx, span := telemetry.StartSpan(ctx, "PortfolioService.Create")
	defer span.End()

	var imageURL, imageKey string
	if image != nil {
		key := objectKey("portfolio", image.Filename)
		url, err := s.images.Upload(ctx, key, image.ContentType, image.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL, imageKey = url, key
	}

	now := time.Now()
	item := &domain.PortfolioItem{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     imageURL,
		ImageKey:     imageKey,
		Category:     req.Category,
		Technologies: req.Technologies,
		Year:         req.Year,
		Link:         req.Link,
		Featured:     req.Featured,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create portfolio item: %w", err)
	}
	return item, nil
}

// Get returns a single portfolio item
func (s *PortfolioService) Get(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// List returns portfolio items. Public callers see only active items.
func (s *PortfolioService) List(ctx context.Context, includeInactive bool) ([]*domain.PortfolioItem, error) {
	return s.items.List(ctx, !includeInactive)
}

// Update applies a partial update, replacing the stored image when a new
// one is provided. The previous image is deleted from storage afterwards.
func (s *PortfolioService) Update(ctx context.Context, id string, req *dto.UpdatePortfolioRequest, image *ImageUpload) (*domain.PortfolioItem, error) {
	ctx, span := telemetry.StartSpan(ctx, "PortfolioService.Update")
	defer span.End()

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Technologies != nil {
		item.Technologies = req.Technologies
	}
	if req.Year != "" {
		item.Year = req.Year
	}
	if req.Link != "" {
		item.Link = req.Link
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	oldKey := ""
	if image != nil {
		key := objectKey("portfolio", image.Filename)
		url, err := s.images.Upload(ctx, key, image.ContentType, image.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		oldKey = item.ImageKey
		item.ImageURL = url
		item.ImageKey = key
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update portfolio item: %w", err)
	}

	if oldKey != "" {
		if err := s.images.Delete(ctx, oldKey); err != nil {
			logger.Get().Warn("failed to delete replaced image",
				zap.String("key", oldKey), zap.Error(err))
		}
	}
	return item, nil
}

// Delete removes a portfolio item and its stored image
func (s *PortfolioService) Delete(ctx context.Context, id string) error {
	ctx, span := telemetry.StartSpan(ctx, "PortfolioService.Delete")
	defer span.End()

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get portfolio item: %w", err)
	}
	if item == nil {
		return ErrNotFound
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}

	if item.ImageKey != "" {
		if err := s.images.Delete(ctx, item.ImageKey); err != nil {
			logger.Get().Warn("failed to delete image",
				zap.String("key", item.ImageKey), zap.Error(err))
		}
	}
	return nil
}

// objectKey builds a collision-free storage key under the given prefix,
// preserving the original file extension
func objectKey(prefix, filename string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), path.Ext(filename))
}
