package main

import (
	"context"
	"net/http"
	"time"

	"classpoint_backend/config"
	"classpoint_backend/database"
	_ "classpoint_backend/docs" // Swagger docs - auto-generated
	"classpoint_backend/internal/controller"
	"classpoint_backend/internal/controller/student"
	"classpoint_backend/internal/controller/teacher"
	"classpoint_backend/internal/logger"
	"classpoint_backend/internal/model"
	"classpoint_backend/internal/repository"
	"classpoint_backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Classpoint Grading API
// @version 1.0
// @description Assessment grading and score recomputation for classroom tests.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewMembershipRepository,
			repository.NewTestRepository,
			repository.NewTestAttemptRepository,
			repository.NewResponseRepository,
			repository.NewNotificationRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewMembershipService,
			service.NewScoreService,
			service.NewNotificationService,
			func(
				membershipSvc service.MembershipService,
				scoreSvc service.ScoreService,
				notificationSvc service.NotificationService,
				testRepo repository.TestRepository,
				attemptRepo repository.TestAttemptRepository,
				responseRepo repository.ResponseRepository,
				db *gorm.DB,
			) service.GradingService {
				// GradingService owns the db handle for its per-attempt transactions.
				return service.NewGradingService(membershipSvc, scoreSvc, notificationSvc, testRepo, attemptRepo, responseRepo, db)
			},
			service.NewTestService,
		),

		// API Controllers Layer
		fx.Provide(
			teacher.NewGradingController,
			student.NewNotificationController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	gradingCtrl *teacher.GradingController,
	notificationCtrl *student.NotificationController,
) {
	api := router.Group("/api/v1")
	api.Use(controller.IdentityMiddleware())
	{
		classrooms := api.Group("/classrooms/:classroom_id")
		classrooms.GET("/attempts/:attempt_id", gradingCtrl.GetAttemptDetail)

		tests := classrooms.Group("/tests/:test_id")
		tests.GET("/attempts", gradingCtrl.ListAttempts)
		tests.POST("/attempts/:attempt_id/grade", gradingCtrl.GradeAttempt)
		tests.POST("/attempts/:attempt_id/recompute", gradingCtrl.RecomputeScore)

		api.GET("/notifications", notificationCtrl.ListNotifications)
		api.POST("/notifications/:notification_id/read", notificationCtrl.MarkNotificationRead)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Classpoint grading API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Classroom{},
		&model.ClassroomMember{},
		&model.Test{},
		&model.Question{},
		&model.TestAttempt{},
		&model.TestAttemptResponse{},
		&model.Notification{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
