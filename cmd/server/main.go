package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-api/adapters/http"
	"github.com/khoahotran/portfolio-api/adapters/llm"
	"github.com/khoahotran/portfolio-api/adapters/media_storage"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	achievementUC "github.com/khoahotran/portfolio-api/internal/application/usecase/achievement"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	chatUC "github.com/khoahotran/portfolio-api/internal/application/usecase/chat"
	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	heroUC "github.com/khoahotran/portfolio-api/internal/application/usecase/hero"
	leadershipUC "github.com/khoahotran/portfolio-api/internal/application/usecase/leadership"
	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	uploadUC "github.com/khoahotran/portfolio-api/internal/application/usecase/upload"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting portfolio API server", zap.String("env", cfg.App.Env))

	tracerProvider, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Warn("Tracing disabled", zap.Error(err))
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			tracerProvider.Shutdown(ctx)
		}()
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot init uploader: %v", err)
	}

	llmAdapter, err := llm.NewGeminiLLMAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot init LLM client: %v", err)
	}

	// Repositories
	accountRepo := persistence.NewPostgresAccountRepo(dbPool)
	heroRepo := persistence.NewPostgresHeroRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	achievementRepo := persistence.NewPostgresAchievementRepo(dbPool, appLogger)
	leadershipRepo := persistence.NewPostgresLeadershipRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	sessionStore := persistence.NewRedisSessionStore(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use cases
	authUseCase := authUC.NewAuthUseCase(accountRepo, jwtSvc, sessionStore, appLogger)
	heroUseCase := heroUC.NewHeroUseCase(heroRepo, kafkaClient, appLogger)
	projectUseCase := projectUC.NewProjectUseCase(projectRepo, kafkaClient, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, kafkaClient, appLogger)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo, kafkaClient, appLogger)
	achievementUseCase := achievementUC.NewAchievementUseCase(achievementRepo, kafkaClient, appLogger)
	leadershipUseCase := leadershipUC.NewLeadershipUseCase(leadershipRepo, kafkaClient, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, kafkaClient, appLogger)
	uploadUseCase := uploadUC.NewUploadUseCase(uploader, kafkaClient, appLogger)
	chatUseCase := chatUC.NewChatUseCase(llmAdapter, cfg.Gemini.Model, appLogger)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(authUseCase, appLogger)
	heroHandler := httpAdapter.NewHeroHandler(heroUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(projectUseCase, appLogger)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase, appLogger)
	educationHandler := httpAdapter.NewEducationHandler(educationUseCase, appLogger)
	achievementHandler := httpAdapter.NewAchievementHandler(achievementUseCase, appLogger)
	leadershipHandler := httpAdapter.NewLeadershipHandler(leadershipUseCase, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase, appLogger)
	uploadHandler := httpAdapter.NewUploadHandler(uploadUseCase, appLogger)
	chatHandler := httpAdapter.NewChatHandler(chatUseCase, appLogger)
	healthHandler := httpAdapter.NewHealthHandler(dbPool, cfg.App.Env)

	// Middleware
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger, cfg.IsProduction())
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, accountRepo, sessionStore, appLogger)
	adminMiddleware := httpAdapter.AdminMiddleware()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(errorMiddleware)
	router.Use(corsMiddleware(cfg))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)

			authPrivate := authGroup.Group("/")
			authPrivate.Use(authMiddleware)
			{
				authPrivate.GET("/verify", authHandler.Verify)
				authPrivate.GET("/me", authHandler.Me)
				authPrivate.POST("/logout", authHandler.Logout)
			}
		}

		portfolio := api.Group("/portfolio")
		{
			// Public reads
			portfolio.GET("/hero", heroHandler.Get)
			portfolio.GET("/projects", projectHandler.List)
			portfolio.GET("/projects/:id", projectHandler.Get)
			portfolio.GET("/experience", experienceHandler.List)
			portfolio.GET("/experience/:id", experienceHandler.Get)
			portfolio.GET("/education", educationHandler.List)
			portfolio.GET("/education/:id", educationHandler.Get)
			portfolio.GET("/achievements", achievementHandler.List)
			portfolio.GET("/achievements/:id", achievementHandler.Get)
			portfolio.GET("/leadership", leadershipHandler.List)
			portfolio.GET("/leadership/:id", leadershipHandler.Get)
			portfolio.GET("/skills", skillHandler.ListCategories)
			portfolio.GET("/skills/:id", skillHandler.GetCategory)

			// The initial hero write is the one mutation any authenticated
			// account may perform; everything else needs the admin role.
			authed := portfolio.Group("/")
			authed.Use(authMiddleware)
			{
				authed.POST("/hero", heroHandler.Upsert)
			}

			admin := portfolio.Group("/")
			admin.Use(authMiddleware, adminMiddleware)
			{
				admin.PUT("/hero", heroHandler.Upsert)

				admin.POST("/projects", projectHandler.Create)
				admin.PUT("/projects/:id", projectHandler.Update)
				admin.DELETE("/projects/:id", projectHandler.Delete)

				admin.POST("/experience", experienceHandler.Create)
				admin.PUT("/experience/:id", experienceHandler.Update)
				admin.DELETE("/experience/:id", experienceHandler.Delete)

				admin.POST("/education", educationHandler.Create)
				admin.PUT("/education/:id", educationHandler.Update)
				admin.DELETE("/education/:id", educationHandler.Delete)

				admin.POST("/achievements", achievementHandler.Create)
				admin.PUT("/achievements/:id", achievementHandler.Update)
				admin.DELETE("/achievements/:id", achievementHandler.Delete)

				admin.POST("/leadership", leadershipHandler.Create)
				admin.PUT("/leadership/:id", leadershipHandler.Update)
				admin.DELETE("/leadership/:id", leadershipHandler.Delete)

				admin.POST("/skills", skillHandler.CreateCategory)
				admin.PUT("/skills/:id", skillHandler.UpdateCategory)
				admin.DELETE("/skills/:id", skillHandler.DeleteCategory)
				admin.POST("/skills/:id/items", skillHandler.AddSkill)
				admin.PUT("/skills/:id/items/:skillID", skillHandler.UpdateSkill)
				admin.DELETE("/skills/:id/items/:skillID", skillHandler.DeleteSkill)
			}
		}

		upload := api.Group("/upload")
		{
			// Uploading a new image and deriving URLs are deliberately open;
			// destructive and inventory operations are not.
			upload.POST("/image", uploadHandler.Upload)
			upload.POST("/transform", uploadHandler.Transform)

			uploadAdmin := upload.Group("/")
			uploadAdmin.Use(authMiddleware, adminMiddleware)
			{
				// Wildcard: Cloudinary public IDs carry the folder prefix
				// ("portfolio/<uuid>"), so the segment contains a slash.
				uploadAdmin.DELETE("/image/*publicID", uploadHandler.Delete)
				uploadAdmin.GET("/images", uploadHandler.List)
			}
		}

		chatbot := api.Group("/chatbot")
		{
			chatbot.POST("/query", chatHandler.Query)

			chatPrivate := chatbot.Group("/")
			chatPrivate.Use(authMiddleware)
			{
				chatPrivate.GET("/history", chatHandler.History)
				chatPrivate.POST("/feedback", chatHandler.Feedback)
			}
		}
	}

	appLogger.Info("Server listening", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}

func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if cfg.IsProduction() {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	return cors.New(corsCfg)
}
