package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/taktix-app/tryout-engine/config"
	"github.com/taktix-app/tryout-engine/database"
	_ "github.com/taktix-app/tryout-engine/docs" // Swagger docs - auto-generated
	"github.com/taktix-app/tryout-engine/internal/auth"
	adminctrl "github.com/taktix-app/tryout-engine/internal/controller/admin"
	studentctrl "github.com/taktix-app/tryout-engine/internal/controller/student"
	"github.com/taktix-app/tryout-engine/internal/logger"
	"github.com/taktix-app/tryout-engine/internal/model"
	"github.com/taktix-app/tryout-engine/internal/repository"
	"github.com/taktix-app/tryout-engine/internal/service"
)

// @title Taktix Tryout Engine API
// @version 1.0
// @description API for timed UTBK-style tryout sessions with IRT scoring and attempt history.
// @contact.name API Support
// @contact.email support@taktix.co.id
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
			repository.NewTryoutRepository,
			repository.NewQuestionRepository,
			repository.NewResultRepository,
			repository.NewScoreRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAdminTryoutService,
			service.NewTryoutService,
			service.NewSubmissionService,
			service.NewSessionService,
			service.NewHistoryService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTryoutController,
			studentctrl.NewStudentTryoutController,
			studentctrl.NewSessionController,
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
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
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
	adminTryoutCtrl *adminctrl.AdminTryoutController,
	studentTryoutCtrl *studentctrl.StudentTryoutController,
	sessionCtrl *studentctrl.SessionController,
) {
	authRequired := auth.Middleware(cfg.JWTSecret)

	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin", authRequired)
	{
		adminAPIGroup.POST("/tryouts", adminTryoutCtrl.CreateTryout)
	}

	// Student Routes (prefixed with /api/v1)
	studentAPIGroup := router.Group("/api/v1", authRequired)
	{
		// Tryout catalog
		studentAPIGroup.GET("/tryouts", studentTryoutCtrl.GetAllTryouts)
		studentAPIGroup.GET("/tryouts/:tryout_id", studentTryoutCtrl.GetTryoutDetails)
		studentAPIGroup.GET("/tryouts/:tryout_id/answer-key", studentTryoutCtrl.GetAnswerKey)

		// Attempt history and scores
		studentAPIGroup.GET("/tryouts/:tryout_id/attempts", studentTryoutCtrl.GetAttemptHistory)
		studentAPIGroup.GET("/tryouts/:tryout_id/scores/:attempt_number", studentTryoutCtrl.GetAttemptScore)

		// Live exam sessions
		studentAPIGroup.POST("/tryouts/:tryout_id/sessions", sessionCtrl.StartSession)
		studentAPIGroup.GET("/sessions/:session_id", sessionCtrl.GetState)
		studentAPIGroup.POST("/sessions/:session_id/answer", sessionCtrl.SelectAnswer)
		studentAPIGroup.POST("/sessions/:session_id/navigate", sessionCtrl.Navigate)
		studentAPIGroup.POST("/sessions/:session_id/advance", sessionCtrl.AdvanceSubtest)
		studentAPIGroup.POST("/sessions/:session_id/submit", sessionCtrl.Submit)
		studentAPIGroup.DELETE("/sessions/:session_id", sessionCtrl.Exit)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Tryout engine server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Tryout{},
		&model.Question{},
		&model.AnswerRecord{},
		&model.ScoreRecord{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
