package di

import (
	"github.com/tasfirul8269/frooxi-backend/internal/config"
	"github.com/tasfirul8269/frooxi-backend/internal/database"
	"github.com/tasfirul8269/frooxi-backend/internal/handler"
	"github.com/tasfirul8269/frooxi-backend/internal/middleware"
	"github.com/tasfirul8269/frooxi-backend/internal/redis"
	"github.com/tasfirul8269/frooxi-backend/internal/repository"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
	"github.com/tasfirul8269/frooxi-backend/internal/storage"
)

// Container holds all dependencies for the API server
type Container struct {
	// Infrastructure
	DB      *database.PostgresDB
	Redis   *redis.Client
	Storage storage.ObjectStorage

	// Rate limit counter backend
	Counters middleware.CounterStore

	// Repositories
	UserRepo         repository.UserRepository
	TransactionRepo  repository.TransactionRepository
	PortfolioRepo    repository.PortfolioRepository
	TestimonialRepo  repository.TestimonialRepository
	TeamRepo         repository.TeamMemberRepository
	SubscriptionRepo repository.SubscriptionRepository
	ConsultationRepo repository.ConsultationRepository
	ContactRepo      repository.ContactRepository

	// Services
	TokenService        *service.TokenService
	AuthService         *service.AuthService
	TransactionService  *service.TransactionService
	PortfolioService    *service.PortfolioService
	TestimonialService  *service.TestimonialService
	TeamService         *service.TeamService
	SubscriptionService *service.SubscriptionService
	ConsultationService *service.ConsultationService
	ContactService      *service.ContactService
	DashboardService    *service.DashboardService

	// Handlers
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	TransactionHandler  *handler.TransactionHandler
	PortfolioHandler    *handler.PortfolioHandler
	TestimonialHandler  *handler.TestimonialHandler
	TeamHandler         *handler.TeamHandler
	SubscriptionHandler *handler.SubscriptionHandler
	ConsultationHandler *handler.ConsultationHandler
	ContactHandler      *handler.ContactHandler
	DashboardHandler    *handler.DashboardHandler
	HealthHandler       *handler.HealthHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Redis   *redis.Client
	Storage storage.ObjectStorage
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:      cfg.DB,
		Redis:   cfg.Redis,
		Storage: cfg.Storage,
	}
	appCfg := cfg.Config

	// Rate limit counters: Redis when available so limits hold across
	// instances, otherwise per-process memory
	if c.Redis != nil && appCfg.RateLimit.UseRedis {
		c.Counters = middleware.NewRedisCounterStore(c.Redis)
	} else {
		c.Counters = middleware.NewMemoryCounterStore()
	}

	// Repositories
	c.UserRepo = repository.NewPostgresUserRepository(c.DB.Pool())
	c.TransactionRepo = repository.NewPostgresTransactionRepository(c.DB.Pool())
	c.PortfolioRepo = repository.NewPostgresPortfolioRepository(c.DB.Pool())
	c.TestimonialRepo = repository.NewPostgresTestimonialRepository(c.DB.Pool())
	c.TeamRepo = repository.NewPostgresTeamMemberRepository(c.DB.Pool())
	c.SubscriptionRepo = repository.NewPostgresSubscriptionRepository(c.DB.Pool())
	c.ConsultationRepo = repository.NewPostgresConsultationRepository(c.DB.Pool())
	c.ContactRepo = repository.NewPostgresContactRepository(c.DB.Pool())

	// Services
	c.TokenService = service.NewTokenService(appCfg.JWT.Secret, appCfg.JWT.TokenTTL, appCfg.JWT.Issuer)
	c.AuthService = service.NewAuthService(c.UserRepo, c.TokenService)
	c.TransactionService = service.NewTransactionService(c.TransactionRepo)
	c.PortfolioService = service.NewPortfolioService(c.PortfolioRepo, c.Storage)
	c.TestimonialService = service.NewTestimonialService(c.TestimonialRepo, c.Storage)
	c.TeamService = service.NewTeamService(c.TeamRepo, c.Storage)
	c.SubscriptionService = service.NewSubscriptionService(c.SubscriptionRepo)
	c.ConsultationService = service.NewConsultationService(c.ConsultationRepo)
	c.ContactService = service.NewContactService(c.ContactRepo)
	c.DashboardService = service.NewDashboardService(
		c.UserRepo, c.PortfolioRepo, c.TestimonialRepo, c.TeamRepo, c.SubscriptionRepo,
	)

	// Handlers
	secureCookies := appCfg.IsProduction()
	c.AuthHandler = handler.NewAuthHandler(c.AuthService, appCfg.JWT.TokenTTL, secureCookies)
	c.UserHandler = handler.NewUserHandler(c.AuthService)
	c.TransactionHandler = handler.NewTransactionHandler(c.TransactionService)
	c.PortfolioHandler = handler.NewPortfolioHandler(c.PortfolioService)
	c.TestimonialHandler = handler.NewTestimonialHandler(c.TestimonialService)
	c.TeamHandler = handler.NewTeamHandler(c.TeamService)
	c.SubscriptionHandler = handler.NewSubscriptionHandler(c.SubscriptionService)
	c.ConsultationHandler = handler.NewConsultationHandler(c.ConsultationService)
	c.ContactHandler = handler.NewContactHandler(c.ContactService)
	c.DashboardHandler = handler.NewDashboardHandler(c.DashboardService)
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis, appCfg.App.Version)

	return c
}
