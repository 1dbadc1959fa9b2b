package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/repository"
	"github.com/tasfirul8269/frooxi-backend/internal/telemetry"
)

const recentUserLimit = 5

// DashboardService assembles the admin dashboard overview
type DashboardService struct {
	users         repository.UserRepository
	portfolio     repository.PortfolioRepository
	testimonials  repository.TestimonialRepository
	team          repository.TeamMemberRepository
	subscriptions repository.SubscriptionRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	users repository.UserRepository,
	portfolio repository.PortfolioRepository,
	testimonials repository.TestimonialRepository,
	team repository.TeamMemberRepository,
	subscriptions repository.SubscriptionRepository,
) *DashboardService {
	return &DashboardService{
		users:         users,
		portfolio:     portfolio,
		testimonials:  testimonials,
		team:          team,
		subscriptions: subscriptions,
	}
}

// Overview gathers entity counts, recent signups and the portfolio
// category distribution
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "DashboardService.Overview")
	defer span.End()

	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	portfolioCount, err := s.portfolio.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count portfolio items: %w", err)
	}
	testimonialCount, err := s.testimonials.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count testimonials: %w", err)
	}
	teamCount, err := s.team.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count team members: %w", err)
	}
	activeSubscriptions, err := s.subscriptions.CountByStatus(ctx, domain.SubscriptionActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	recent, err := s.users.ListRecent(ctx, recentUserLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}
	recentUsers := make([]dto.RecentUser, 0, len(recent))
	for _, u := range recent {
		recentUsers = append(recentUsers, dto.RecentUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      string(u.Role),
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}

	categories, err := s.portfolio.CategoryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category counts: %w", err)
	}
	if categories == nil {
		categories = []dto.CategoryCount{}
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			Users:               userCount,
			PortfolioItems:      portfolioCount,
			ActiveSubscriptions: activeSubscriptions,
			Testimonials:        testimonialCount,
			TeamMembers:         teamCount,
		},
		RecentUsers:       recentUsers,
		ProjectCategories: categories,
	}, nil
}
