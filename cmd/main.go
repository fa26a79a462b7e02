package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"rnbridge/internal/caching"
	"rnbridge/internal/config"
	"rnbridge/internal/handlers"
	"rnbridge/internal/repositories"
	"rnbridge/internal/services"
	"rnbridge/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	ctx := context.Background()

	// Create database connection pool
	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Schema init and seeding are best effort: the server still comes up
	// when the store is unreachable, and the contact path degrades.
	if err := database.CreateTables(ctx, pool); err != nil {
		log.Printf("Error initializing database: %v", err)
		log.Println("Server will continue without database initialization")
	} else if err := database.InsertSampleData(ctx, pool); err != nil {
		log.Printf("Error inserting sample data: %v", err)
	}

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Create repositories
	inquiryRepo := repositories.NewInquiryRepository(pool)
	studentRepo := repositories.NewStudentRepository(pool)
	universityRepo := repositories.NewUniversityRepository(pool)
	catalogRepo := repositories.NewCatalogRepository(pool)

	// Create services
	notifier := services.NewSMTPNotificationService(services.SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		User:       cfg.SMTPUser,
		Password:   cfg.SMTPPassword,
		From:       cfg.FromEmail,
		AdminEmail: cfg.AdminEmail,
	})
	inquirySvc := services.NewInquiryService(inquiryRepo, notifier, services.NewDegradedModeResponder())
	studentSvc := services.NewStudentService(studentRepo, notifier)
	universitySvc := services.NewUniversityService(universityRepo, cacheSvc)

	// Create handlers
	contactHandlers := handlers.NewContactHandlers(inquirySvc)
	studentHandlers := handlers.NewStudentHandlers(studentSvc)
	universityHandlers := handlers.NewUniversityHandlers(universitySvc)
	catalogHandlers := handlers.NewCatalogHandlers(catalogRepo)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewRequestValidator()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Global middleware
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	e.GET("/", handlers.Welcome)
	e.GET("/api/health", handlers.HealthCheck)

	// Contact routes
	contact := e.Group("/api/contact")
	contact.POST("/submit", contactHandlers.Submit)
	contact.GET("/inquiries", contactHandlers.ListInquiries)
	contact.GET("/inquiries/:id", contactHandlers.GetInquiry)
	contact.PATCH("/inquiries/:id/status", contactHandlers.UpdateInquiryStatus)
	contact.DELETE("/inquiries/:id", contactHandlers.DeleteInquiry)

	// Student routes
	students := e.Group("/api/students")
	students.POST("/apply", studentHandlers.Apply)
	students.GET("", studentHandlers.ListStudents)
	students.GET("/status/:status", studentHandlers.ListStudentsByStatus)
	students.GET("/country/:country", studentHandlers.ListStudentsByCountry)
	students.GET("/:id", studentHandlers.GetStudent)
	students.PUT("/:id", studentHandlers.UpdateStudent)
	students.PATCH("/:id/status", studentHandlers.UpdateStudentStatus)
	students.DELETE("/:id", studentHandlers.DeleteStudent)

	// University routes
	universities := e.Group("/api/universities")
	universities.GET("", universityHandlers.ListUniversities)
	universities.POST("", universityHandlers.CreateUniversity)
	universities.GET("/country/:country", universityHandlers.ListUniversitiesByCountry)
	universities.GET("/program/:program", universityHandlers.ListUniversitiesByProgram)
	universities.GET("/search/:query", universityHandlers.SearchUniversities)
	universities.GET("/budget/:min/:max", universityHandlers.ListUniversitiesByBudget)
	universities.GET("/:id", universityHandlers.GetUniversity)
	universities.PUT("/:id", universityHandlers.UpdateUniversity)
	universities.DELETE("/:id", universityHandlers.DeleteUniversity)

	// Marketing content
	e.GET("/api/services", catalogHandlers.ListServices)
	e.GET("/api/testimonials", catalogHandlers.ListTestimonials)

	// Start server with graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Printf("RNBRIDGE server v%s starting on port %d", version, cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
