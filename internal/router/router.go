package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/config"
	"github.com/tasfirul8269/frooxi-backend/internal/di"
	"github.com/tasfirul8269/frooxi-backend/internal/middleware"
	"github.com/tasfirul8269/frooxi-backend/internal/telemetry"
)

// Setup wires middleware and routes onto a gin engine.
//
// Request flow: rate limiter, CSRF guard, then auth on protected groups.
// Public reads stay open; writes on content resources require an admin.
func Setup(cfg *config.Config, c *di.Container) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	if cfg.OTel.Enabled {
		r.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.CSRFHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global budget for everything under /api
	apiLimit := middleware.RateLimit(c.Counters, middleware.RateLimitConfig{
		KeyPrefix:   "api",
		Window:      cfg.RateLimit.Window,
		MaxRequests: cfg.RateLimit.MaxRequests,
	})
	// Tighter budget for credential endpoints. Successful logins are
	// refunded so only failed attempts burn it.
	authLimit := middleware.RateLimit(c.Counters, middleware.RateLimitConfig{
		KeyPrefix:     "auth",
		Window:        cfg.RateLimit.AuthWindow,
		MaxRequests:   cfg.RateLimit.AuthMax,
		SuccessExempt: true,
	})

	csrf := middleware.CSRFGuard(cfg.IsProduction())
	requireAuth := middleware.RequireAuth(c.TokenService, c.UserRepo)
	optionalAuth := middleware.OptionalAuth(c.TokenService, c.UserRepo)
	requireAdmin := middleware.RequireAdmin()

	r.GET("/health/live", c.HealthHandler.Live)
	r.GET("/health/ready", c.HealthHandler.Ready)

	api := r.Group("/api", apiLimit, csrf)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authLimit, c.AuthHandler.Register)
			auth.POST("/login", authLimit, c.AuthHandler.Login)
			auth.POST("/logout", c.AuthHandler.Logout)

			me := auth.Group("", requireAuth)
			{
				me.GET("/me", c.AuthHandler.Me)
				me.PATCH("/me", c.AuthHandler.UpdateProfile)
				me.POST("/change-password", c.AuthHandler.ChangePassword)
			}
		}

		users := api.Group("/users", requireAuth, requireAdmin)
		{
			users.GET("", c.UserHandler.List)
			users.GET("/:id", c.UserHandler.Get)
			users.PATCH("/:id/active", c.UserHandler.SetActive)
			users.DELETE("/:id", c.UserHandler.Delete)
		}

		transactions := api.Group("/transactions", requireAuth)
		{
			transactions.POST("", c.TransactionHandler.Create)
			transactions.GET("", c.TransactionHandler.List)
			transactions.GET("/summary", c.TransactionHandler.Summary)
			transactions.GET("/:id", c.TransactionHandler.Get)
			transactions.PATCH("/:id", c.TransactionHandler.Update)
			transactions.DELETE("/:id", c.TransactionHandler.Delete)
		}

		portfolio := api.Group("/portfolio")
		{
			portfolio.GET("", optionalAuth, c.PortfolioHandler.List)
			portfolio.GET("/:id", c.PortfolioHandler.Get)
			portfolio.POST("", requireAuth, requireAdmin, c.PortfolioHandler.Create)
			portfolio.PATCH("/:id", requireAuth, requireAdmin, c.PortfolioHandler.Update)
			portfolio.DELETE("/:id", requireAuth, requireAdmin, c.PortfolioHandler.Delete)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", optionalAuth, c.TestimonialHandler.List)
			testimonials.GET("/:id", c.TestimonialHandler.Get)
			testimonials.POST("", requireAuth, requireAdmin, c.TestimonialHandler.Create)
			testimonials.PATCH("/:id", requireAuth, requireAdmin, c.TestimonialHandler.Update)
			testimonials.DELETE("/:id", requireAuth, requireAdmin, c.TestimonialHandler.Delete)
		}

		team := api.Group("/team")
		{
			team.GET("", optionalAuth, c.TeamHandler.List)
			team.GET("/:id", c.TeamHandler.Get)
			team.POST("", requireAuth, requireAdmin, c.TeamHandler.Create)
			team.PATCH("/:id", requireAuth, requireAdmin, c.TeamHandler.Update)
			team.DELETE("/:id", requireAuth, requireAdmin, c.TeamHandler.Delete)
		}

		subscriptions := api.Group("/subscriptions")
		{
			subscriptions.POST("", c.SubscriptionHandler.Create)
			subscriptions.GET("", requireAuth, requireAdmin, c.SubscriptionHandler.List)
			subscriptions.GET("/:id", requireAuth, requireAdmin, c.SubscriptionHandler.Get)
			subscriptions.PATCH("/:id/status", requireAuth, requireAdmin, c.SubscriptionHandler.UpdateStatus)
			subscriptions.DELETE("/:id", requireAuth, requireAdmin, c.SubscriptionHandler.Delete)
		}

		consultations := api.Group("/consultations")
		{
			consultations.POST("", c.ConsultationHandler.Create)
			consultations.GET("", requireAuth, requireAdmin, c.ConsultationHandler.List)
			consultations.GET("/:id", requireAuth, requireAdmin, c.ConsultationHandler.Get)
			consultations.PATCH("/:id/status", requireAuth, requireAdmin, c.ConsultationHandler.UpdateStatus)
			consultations.DELETE("/:id", requireAuth, requireAdmin, c.ConsultationHandler.Delete)
		}

		contacts := api.Group("/contacts")
		{
			contacts.POST("", c.ContactHandler.Create)
			contacts.GET("", requireAuth, requireAdmin, c.ContactHandler.List)
			contacts.GET("/:id", requireAuth, requireAdmin, c.ContactHandler.Get)
			contacts.PATCH("/:id/status", requireAuth, requireAdmin, c.ContactHandler.UpdateStatus)
			contacts.DELETE("/:id", requireAuth, requireAdmin, c.ContactHandler.Delete)
		}

		api.GET("/dashboard", requireAuth, requireAdmin, c.DashboardHandler.Overview)
	}

	return r
}
