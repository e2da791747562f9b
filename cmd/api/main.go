package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jobhive/jobhive/internal/auth"
	"github.com/jobhive/jobhive/internal/config"
	"github.com/jobhive/jobhive/internal/database"
	"github.com/jobhive/jobhive/internal/handlers"
	"github.com/jobhive/jobhive/internal/middleware"
	"github.com/jobhive/jobhive/internal/services"
)

func main() {
	// 1. Environment & configuration
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// 2. Database connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// 3. Core services
	codec := auth.NewCodec(cfg.SecretKey)
	companyService, err := services.NewCompanyService(db)
	if err != nil {
		log.Fatal("Failed to init company service:", err)
	}
	jobService, err := services.NewJobService(db)
	if err != nil {
		log.Fatal("Failed to init job service:", err)
	}
	userService, err := services.NewUserService(db, cfg.BcryptCost)
	if err != nil {
		log.Fatal("Failed to init user service:", err)
	}

	// 4. Handlers
	authHandler := handlers.NewAuthHandler(userService, codec)
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobHandler := handlers.NewJobHandler(jobService)
	userHandler := handlers.NewUserHandler(userService, codec)

	// 5. Router, CORS, middleware
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.Authenticate(codec))

	// 6. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/token", authHandler.Login)
		}

		companies := api.Group("/companies")
		{
			companies.GET("", companyHandler.List)
			companies.GET("/:handle", companyHandler.Get)
			companies.POST("", middleware.Require(auth.AdminOnly, ""), companyHandler.Create)
			companies.PATCH("/:handle", middleware.Require(auth.AdminOnly, ""), companyHandler.Update)
			companies.DELETE("/:handle", middleware.Require(auth.AdminOnly, ""), companyHandler.Delete)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.List)
			jobs.GET("/:id", jobHandler.Get)
			jobs.POST("", middleware.Require(auth.AdminOnly, ""), jobHandler.Create)
			jobs.PATCH("/:id", middleware.Require(auth.AdminOnly, ""), jobHandler.Update)
			jobs.DELETE("/:id", middleware.Require(auth.AdminOnly, ""), jobHandler.Delete)
		}

		users := api.Group("/users")
		{
			users.POST("", middleware.Require(auth.AdminOnly, ""), userHandler.Create)
			users.GET("", middleware.Require(auth.AdminOnly, ""), userHandler.List)
			users.GET("/:username", middleware.Require(auth.AdminOrSelf, "username"), userHandler.Get)
			users.PATCH("/:username", middleware.Require(auth.AdminOrSelf, "username"), userHandler.Update)
			users.DELETE("/:username", middleware.Require(auth.AdminOrSelf, "username"), userHandler.Delete)
			users.POST("/:username/jobs/:id", middleware.Require(auth.AdminOrSelf, "username"), userHandler.Apply)
		}
	}

	slog.Info("server starting", "addr", cfg.Port)
	if err := r.Run(cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
