package repository

import (
	"context"
	"time"

	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
)

// UserRepository defines data access for users
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// TransactionRepository defines data access for financial records
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id, ownerID string) (*domain.Transaction, error)
	List(ctx context.Context, ownerID string, filter *dto.TransactionFilter, from, to *time.Time) ([]*domain.Transaction, int64, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id, ownerID string) error
	ListForSummary(ctx context.Context, ownerID string, from, to *time.Time) ([]*domain.Transaction, error)
}

// PortfolioRepository defines data access for portfolio items
type PortfolioRepository interface {
	Create(ctx context.Context, item *domain.PortfolioItem) error
	GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.PortfolioItem, error)
	Update(ctx context.Context, item *domain.PortfolioItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CategoryCounts(ctx context.Context) ([]dto.CategoryCount, error)
}

// TestimonialRepository defines data access for testimonials
type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Testimonial, error)
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// TeamMemberRepository defines data access for team members
type TeamMemberRepository interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.TeamMember, error)
	Update(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// SubscriptionRepository defines data access for subscriptions
type SubscriptionRepository interface {
	Create(ctx context.Context, s *domain.Subscription) error
	GetByID(ctx context.Context, id string) (*domain.Subscription, error)
	List(ctx context.Context) ([]*domain.Subscription, error)
	UpdateStatus(ctx context.Context, id string, status domain.SubscriptionStatus) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status domain.SubscriptionStatus) (int64, error)
}

// ConsultationRepository defines data access for consultation requests
type ConsultationRepository interface {
	Create(ctx context.Context, c *domain.Consultation) error
	GetByID(ctx context.Context, id string) (*domain.Consultation, error)
	List(ctx context.Context) ([]*domain.Consultation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ConsultationStatus) error
	Delete(ctx context.Context, id string) error
}

// ContactRepository defines data access for contact messages
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
	GetByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error
	Delete(ctx context.Context, id string) error
}
