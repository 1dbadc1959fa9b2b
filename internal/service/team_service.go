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

// TeamService manages team member profiles
type TeamService struct {
	members repository.TeamMemberRepository
	images  storage.ObjectStorage
}

// NewTeamService creates a new TeamService
func NewTeamService(members repository.TeamMemberRepository, images storage.ObjectStorage) *TeamService {
	return &TeamService{members: members, images: images}
}

// Create stores a new team member with an optional profile image
func (s *TeamService) Create(ctx context.Context, req *dto.CreateTeamMemberRequest, image *ImageUpload) (*domain.TeamMember, error) {
	ctx, span := telemetry.StartSpan(ctx, "TeamService.Create")
	defer span.End()

	var imageURL, imageKey string
	if image != nil {
		key := objectKey("team", image.Filename)
		url, err := s.images.Upload(ctx, key, image.ContentType, image.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL, imageKey = url, key
	}

	now := time.Now()
	m := &domain.TeamMember{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Position: req.Position,
		Bio:      req.Bio,
		Email:    req.Email,
		ImageURL: imageURL,
		ImageKey: imageKey,
		Socials: domain.SocialLinks{
			LinkedIn:  req.LinkedIn,
			Twitter:   req.Twitter,
			GitHub:    req.GitHub,
			Portfolio: req.Portfolio,
		},
		IsActive:  true,
		Order:     req.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.members.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return m, nil
}

// Get returns a single team member
func (s *TeamService) Get(ctx context.Context, id string) (*domain.TeamMember, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// List returns team members. Public callers see only active ones.
func (s *TeamService) List(ctx context.Context, includeInactive bool) ([]*domain.TeamMember, error) {
	return s.members.List(ctx, !includeInactive)
}

// Update applies a partial update with optional image replacement
func (s *TeamService) Update(ctx context.Context, id string, req *dto.UpdateTeamMemberRequest, image *ImageUpload) (*domain.TeamMember, error) {
	ctx, span := telemetry.StartSpan(ctx, "TeamService.Update")
	defer span.End()

	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	if m == nil {
		return nil, ErrNotFound
	}

	if req.Name != "" {
		m.Name = req.Name
	}
	if req.Position != "" {
		m.Position = req.Position
	}
	if req.Bio != "" {
		m.Bio = req.Bio
	}
	if req.Email != "" {
		m.Email = req.Email
	}
	if req.LinkedIn != "" {
		m.Socials.LinkedIn = req.LinkedIn
	}
	if req.Twitter != "" {
		m.Socials.Twitter = req.Twitter
	}
	if req.GitHub != "" {
		m.Socials.GitHub = req.GitHub
	}
	if req.Portfolio != "" {
		m.Socials.Portfolio = req.Portfolio
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.Order != nil {
		m.Order = *req.Order
	}

	oldKey := ""
	if image != nil {
		key := objectKey("team", image.Filename)
		url, err := s.images.Upload(ctx, key, image.ContentType, image.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		oldKey = m.ImageKey
		m.ImageURL = url
		m.ImageKey = key
	}

	if err := s.members.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	if oldKey != "" {
		if err := s.images.Delete(ctx, oldKey); err != nil {
			logger.Get().Warn("failed to delete replaced image",
				zap.String("key", oldKey), zap.Error(err))
		}
	}
	return m, nil
}

// Delete removes a team member and their stored image
func (s *TeamService) Delete(ctx context.Context, id string) error {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get team member: %w", err)
	}
	if m == nil {
		return ErrNotFound
	}

	if err := s.members.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	if m.ImageKey != "" {
		if err := s.images.Delete(ctx, m.ImageKey); err != nil {
			logger.Get().Warn("failed to delete image",
				zap.String("key", m.ImageKey), zap.Error(err))
		}
	}
	return nil
}
