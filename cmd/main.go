package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/learnhub/config"
	"github.com/lshigami/learnhub/database"
	_ "github.com/lshigami/learnhub/docs" // Swagger docs - auto-generated
	"github.com/lshigami/learnhub/internal/controller"
	"github.com/lshigami/learnhub/internal/logger"
	"github.com/lshigami/learnhub/internal/repository"
	"github.com/lshigami/learnhub/internal/service"
	"github.com/lshigami/learnhub/internal/storage"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title LearnHub Portal API
// @version 1.0
// @description Access-code gated learning portal: materials, question bank and a self-graded quiz.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			NewStore, // Provides storage.Store
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewSessionRepository,
			repository.NewAccessCodeRepository,
			repository.NewQuestionRepository,
			repository.NewMaterialRepository,
		),

		// Services Layer
		fx.Provide(
			func(cfg *config.Config, codes repository.AccessCodeRepository, sessions repository.SessionRepository) service.AuthService {
				return service.NewAuthService(cfg.AccessCodes, codes, sessions)
			},
			service.NewQuizService,
			service.NewQuestionService,
			service.NewMaterialService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewQuizController,
			controller.NewContentController,
		),

		fx.Invoke(RestoreSession),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewStore builds the key-value store behind the configured driver. The
// postgres driver carries the kv_records table; "memory" keeps everything
// in-process, mainly for local runs without a database.
func NewStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Store.Driver == "memory" {
		log.Warn().Msg("Using in-memory store; state will not survive restarts")
		return storage.NewMemoryStore(), nil
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&storage.KVRecord{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return nil, err
	}
	return storage.NewGormStore(db), nil
}

// RestoreSession reloads any persisted session before the server accepts
// requests, so a restart keeps the user logged in.
func RestoreSession(authSvc service.AuthService) error {
	user, err := authSvc.RestoreSession()
	if err != nil {
		return err
	}
	if user == nil {
		log.Info().Msg("No persisted session found")
	}
	return nil
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

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authSvc service.AuthService,
	authCtrl *controller.AuthController,
	quizCtrl *controller.QuizController,
	contentCtrl *controller.ContentController,
) {
	apiGroup := router.Group("/api/v1")

	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/session", authCtrl.Session)
	}

	// Everything beyond the gate requires the session and carries the
	// content-protection headers.
	portal := apiGroup.Group("")
	portal.Use(controller.RequireAuth(authSvc), controller.ContentProtection())
	{
		portal.GET("/subjects", contentCtrl.GetSubjects)

		portal.GET("/materials", contentCtrl.GetMaterials)
		portal.GET("/materials/:id", contentCtrl.GetMaterial)
		portal.POST("/materials", contentCtrl.CreateMaterial)

		portal.GET("/questions", contentCtrl.GetQuestions)
		portal.POST("/questions", contentCtrl.CreateQuestion)

		quizGroup := portal.Group("/quiz")
		quizGroup.POST("/start", quizCtrl.Start)
		quizGroup.GET("", quizCtrl.State)
		quizGroup.POST("/answer", quizCtrl.Answer)
		quizGroup.POST("/next", quizCtrl.Next)
		quizGroup.POST("/previous", quizCtrl.Previous)
		quizGroup.POST("/goto", quizCtrl.GoTo)
		quizGroup.POST("/restart", quizCtrl.Restart)
		quizGroup.POST("/reset", quizCtrl.Reset)
		quizGroup.GET("/results", quizCtrl.Results)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("LearnHub portal server starting on port %s", cfg.Server.Port)
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
