package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/api/handlers"
	"github.com/innovaedu/portal/internal/api/middleware"
	"github.com/innovaedu/portal/internal/auth"
	"github.com/innovaedu/portal/internal/config"
	"github.com/innovaedu/portal/internal/email"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	// Set Gin mode
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware())
	router.Use(corsMiddleware())

	// Initialize authenticator
	var authenticator auth.Authenticator
	switch cfg.Auth.Type {
	case "supabase":
		sb, err := auth.NewSupabaseAuthenticator(db, cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("initializing supabase auth: %w", err)
		}
		authenticator = sb
	case "local", "":
		authenticator = auth.NewLocalAuthenticator(db, cfg.Auth.JWTSecret)
	default:
		return nil, fmt.Errorf("unsupported auth type: %s", cfg.Auth.Type)
	}

	// Initialize handlers
	composer := email.NewComposer(cfg.Notify)
	appointmentHandler := handlers.NewAppointmentHandler(db, composer)
	contactHandler := handlers.NewContactHandler(db, composer)
	countryHandler := handlers.NewCountryHandler(db)
	testimonialHandler := handlers.NewTestimonialHandler(db)
	storyHandler := handlers.NewStoryHandler(db)
	userHandler := handlers.NewUserHandler(db)
	notifyHandler := handlers.NewNotifyHandler(composer)

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", handlers.HealthCheck)
		public.POST("/auth/login", handlers.Login(authenticator))

		public.GET("/countries", countryHandler.ListPublicCountries)
		public.GET("/testimonials", testimonialHandler.ListPublicTestimonials)
		public.GET("/success-stories", storyHandler.ListPublicStories)

		public.POST("/appointments", appointmentHandler.BookAppointment)
		public.POST("/contact-messages", contactHandler.SubmitMessage)

		public.POST("/notifications/appointment-confirmation", notifyHandler.AppointmentConfirmation)
		public.POST("/notifications/contact-confirmation", notifyHandler.ContactConfirmation)
	}

	// Protected routes (require authentication)
	protected := router.Group("/api/v1")
	protected.Use(authenticator.Middleware())
	{
		protected.GET("/auth/me", handlers.Me(db))
		protected.POST("/auth/logout", handlers.Logout(authenticator))

		// Admin endpoints (require an admin role)
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireAdmin(db))
		{
			admin.GET("/appointments", appointmentHandler.ListAppointments)
			admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateAppointmentStatus)

			admin.GET("/contact-messages", contactHandler.ListMessages)
			admin.PATCH("/contact-messages/:id/status", contactHandler.UpdateMessageStatus)

			admin.GET("/countries", countryHandler.ListCountries)
			admin.POST("/countries", countryHandler.CreateCountry)
			admin.PUT("/countries/:id", countryHandler.UpdateCountry)
			admin.DELETE("/countries/:id", countryHandler.DeleteCountry)

			admin.GET("/testimonials", testimonialHandler.ListTestimonials)
			admin.POST("/testimonials", testimonialHandler.CreateTestimonial)
			admin.PUT("/testimonials/:id", testimonialHandler.UpdateTestimonial)
			admin.DELETE("/testimonials/:id", testimonialHandler.DeleteTestimonial)

			admin.GET("/success-stories", storyHandler.ListStories)
			admin.POST("/success-stories", storyHandler.CreateStory)
			admin.PUT("/success-stories/:id", storyHandler.UpdateStory)
			admin.DELETE("/success-stories/:id", storyHandler.DeleteStory)

			admin.GET("/users", userHandler.ListUsers)
			admin.POST("/users/:id/roles", userHandler.AssignRole)
			admin.DELETE("/users/:id/roles/:role", userHandler.RemoveRole)
		}
	}

	// Swagger documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	slog.Info("API router initialized", "mode", cfg.Server.Mode)
	return router, nil
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		slog.Info("HTTP request",
			"method", method,
			"path", path,
			"status", status,
			"latency", latency.String(),
			"ip", c.ClientIP(),
		)
	}
}

// corsMiddleware adds CORS headers and answers pre-flight requests
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Client-Info, Apikey")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
