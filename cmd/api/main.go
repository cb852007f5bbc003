package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/labourease-api/internal/config"
	"github.com/yourusername/labourease-api/internal/handler"
	"github.com/yourusername/labourease-api/internal/middleware"
	postgresRepo "github.com/yourusername/labourease-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/labourease-api/internal/repository/redis"
	"github.com/yourusername/labourease-api/internal/service"
	"github.com/yourusername/labourease-api/pkg/auth"
	"github.com/yourusername/labourease-api/pkg/database"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("[Main] failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("[Main] failed to connect to database: %v", err)
	}
	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("[Main] failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("[Main] failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	// Repositories
	userRepo := postgresRepo.NewUserRepo(db)
	pendingRepo := postgresRepo.NewPendingUserRepo(db)
	verificationRepo := postgresRepo.NewVerificationTokenRepo(db)
	profileRepo := postgresRepo.NewProfileRepo(db)
	jobRepo := postgresRepo.NewJobPostingRepo(db)
	reviewRepo := postgresRepo.NewReviewRepo(db)

	blacklistRepo, err := redisRepo.NewTokenBlacklistRepo(redisClient)
	if err != nil {
		log.Fatalf("[Main] failed to create token blacklist: %v", err)
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs, blacklistRepo)
	if err != nil {
		log.Fatalf("[Main] failed to create jwt service: %v", err)
	}

	var emailService service.EmailService
	switch cfg.Email.Provider {
	case "noop":
		emailService = &service.NoopEmailService{}
		log.Println("[Main] email provider: noop (codes are logged, not sent)")
	default:
		emailService, err = service.NewResendEmailService(cfg.Email.ResendAPIKey, cfg.Email.From)
		if err != nil {
			log.Fatalf("[Main] failed to create email service: %v", err)
		}
	}

	// Services
	registrationService, err := service.NewRegistrationService(
		userRepo, pendingRepo, verificationRepo, emailService, jwtService,
		time.Duration(cfg.Registration.CodeTTLMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatalf("[Main] failed to create registration service: %v", err)
	}
	authService, err := service.NewAuthService(userRepo, jwtService)
	if err != nil {
		log.Fatalf("[Main] failed to create auth service: %v", err)
	}
	profileService, err := service.NewProfileService(profileRepo)
	if err != nil {
		log.Fatalf("[Main] failed to create profile service: %v", err)
	}
	jobService, err := service.NewJobService(jobRepo)
	if err != nil {
		log.Fatalf("[Main] failed to create job service: %v", err)
	}
	reviewService, err := service.NewReviewService(reviewRepo, profileRepo)
	if err != nil {
		log.Fatalf("[Main] failed to create review service: %v", err)
	}
	cleanupService, err := service.NewCleanupService(
		verificationRepo, pendingRepo,
		time.Duration(cfg.Registration.PendingTTLHours)*time.Hour,
	)
	if err != nil {
		log.Fatalf("[Main] failed to create cleanup service: %v", err)
	}

	secureCookies := os.Getenv("GIN_MODE") == "release"
	cookieMaxAge := time.Duration(cfg.JWT.ExpirationHrs) * time.Hour

	// Handlers
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	authHandler := handler.NewAuthHandler(authService, cookieMaxAge, secureCookies)
	profileHandler := handler.NewProfileHandler(profileService)
	jobHandler := handler.NewJobHandler(jobService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatalf("[Main] failed to set trusted proxies: %v", err)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	router.POST("/register", registrationHandler.Register)
	router.POST("/verify", registrationHandler.Verify)
	router.POST("/login", authHandler.Login)
	router.POST("/verifyToken", authHandler.VerifyToken)
	router.GET("/currentOpenings", jobHandler.CurrentOpenings)
	router.POST("/getRatingsForLabour", reviewHandler.GetRatingsForLabour)

	// Authenticated routes
	authed := router.Group("/")
	authed.Use(authMiddleware.RequireAuth())
	{
		authed.GET("/user", authHandler.GetUser)
		authed.GET("/username", authHandler.GetUsername)
		authed.POST("/logoutLabour", authHandler.Logout)
		authed.GET("/shopkeeperProfile", profileHandler.GetShopkeeperProfile)
		authed.PUT("/shopkeeperProfile", profileHandler.UpdateShopkeeperProfile)
		authed.GET("/labourProfile", profileHandler.GetLabourProfile)
		authed.PUT("/labourProfile", profileHandler.UpdateLabourProfile)
	}

	// Shopkeeper-only routes
	shopkeeper := router.Group("/")
	shopkeeper.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole("shopkeeper"))
	{
		shopkeeper.POST("/jobs", jobHandler.CreateJob)
		shopkeeper.POST("/rateLabour", reviewHandler.RateLabour)
		shopkeeper.GET("/ratings/export", reviewHandler.ExportRatings)
	}

	// Periodic sweep of expired codes and stale pending registrations.
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	go func() {
		interval := time.Duration(cfg.Registration.CleanupIntervalMinutes) * time.Minute
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-cleanupCtx.Done():
				return
			case <-ticker.C:
				if err := cleanupService.RunOnce(); err != nil {
					log.Printf("[Main] cleanup sweep failed: %v", err)
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("[Main] server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Main] server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[Main] shutting down...")

	cancelCleanup()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("[Main] forced shutdown: %v", err)
	}
	log.Println("[Main] server stopped")
}
