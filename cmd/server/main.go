package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/workflow-hq/workflow-api/internal/config"
	"github.com/workflow-hq/workflow-api/internal/constants"
	"github.com/workflow-hq/workflow-api/internal/database"
	"github.com/workflow-hq/workflow-api/internal/handlers"
	"github.com/workflow-hq/workflow-api/internal/middleware"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/repository"
	"github.com/workflow-hq/workflow-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load the identity directory (organization catalog + seed admins)
	if cfg.SeedData {
		if err := database.Seed(database.GetDB()); err != nil {
			log.Fatalf("Failed to seed identity directory: %v", err)
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	accountRepo := repository.NewAccountRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	authService := services.NewAuthService(accountRepo)
	taskService := services.NewTaskService(taskRepo, accountRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	employeeHandler := handlers.NewEmployeeHandler(authService)
	orgHandler := handlers.NewOrganizationHandler()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Work Flow API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Organization catalog (public, the signup form needs it)
		api.GET("/organizations", orgHandler.ListOrganizations)

		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(authService), authHandler.GetCurrentUser)
		}

		// Employee management (admin only)
		employees := api.Group("/employees")
		employees.Use(middleware.RequireAuth(authService), middleware.RequireRole(models.RoleAdmin))
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("/:id/approve", employeeHandler.ApproveEmployee)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(authService))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", middleware.RequireRole(models.RoleAdmin), taskHandler.CreateTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
