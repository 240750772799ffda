package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/interview-coach/docs"
	pkgvalidator "github.com/johnquangdev/interview-coach/pkg/validator"

	"github.com/johnquangdev/interview-coach/internal/adapter/handler"
	"github.com/johnquangdev/interview-coach/internal/adapter/repository"
	"github.com/johnquangdev/interview-coach/internal/domain/repositories"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/cache"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/database"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/external/completion"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/external/elevenlabs"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/external/supabase"
	httpmw "github.com/johnquangdev/interview-coach/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/storage"
	"github.com/johnquangdev/interview-coach/internal/usecase/auth"
	"github.com/johnquangdev/interview-coach/internal/usecase/interview"
	pkgai "github.com/johnquangdev/interview-coach/pkg/ai"
	"github.com/johnquangdev/interview-coach/pkg/config"
	"github.com/johnquangdev/interview-coach/pkg/jwt"
)

// @title           Interview Coach API
// @version         1.0
// @description     Feedback and scoring for AI-conducted mock interviews
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	ctx := context.Background()
	log.Println("🔧 Initializing dependencies...")

	// Interview store
	log.Printf("📦 Connecting to %s store...", cfg.Database.Driver)
	repo, closeStore, err := newInterviewStore(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize interview store: %v", err)
	}
	defer closeStore()

	// Revoked-token list
	log.Println("🔒 Initializing token denylist...")
	var tokenStore cache.Store = cache.NewMemoryStore()
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		tokenStore = cache.NewRedisStore(redisClient, "interview-coach:")
	}
	denylist := cache.NewTokenDenylist(tokenStore)
	defer denylist.Close()

	// Optional transcript archive
	var archiver interview.Archiver
	var archiveHandler *handler.Archive
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
		archiver = storage.NewTranscriptArchive(minioClient)
		archiveHandler = handler.NewArchive(storage.NewArchiveIndex(minioClient), logger)
	}

	// Auth
	log.Println("🔐 Initializing Supabase auth...")
	supaClient, err := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}
	authService := auth.NewService(supabase.NewAuthProvider(supaClient.Auth), denylist, jwt.NewInspector(), logger)

	// Interview pipeline
	log.Println("🤖 Initializing interview pipeline...")
	conversations := elevenlabs.NewGateway(pkgai.NewElevenLabsClient(cfg.ElevenLabs))
	completions := completion.NewGateway(pkgai.NewOpenRouterClient(cfg.Completion))
	interviewService := interview.NewInterviewService(conversations, completions, repo, archiver, interview.Config{
		Poll: interview.PollOptions{
			Interval: cfg.Pipeline.PollInterval,
			MaxPolls: cfg.Pipeline.MaxPolls,
			Timeout:  cfg.Pipeline.PollTimeout,
		},
		Model:   cfg.Completion.Model,
		Timeout: cfg.Pipeline.Timeout,
	}, logger)

	// Routes
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		handler.NewAuth(authService, logger),
		handler.NewInterview(interviewService, logger),
		httpmw.EchoAuth(authService),
	)
	if archiveHandler != nil {
		router.WithArchive(archiveHandler)
	}
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newInterviewStore selects the record store for STORE_DRIVER and returns its cleanup func
func newInterviewStore(cfg *config.Config, logger *zap.Logger) (repositories.InterviewRepository, func(), error) {
	if cfg.Database.Driver == config.StoreDriverPostgres {
		db, err := database.NewPostgresDB(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		// Production deployments manage schema via cmd/migrate
		if cfg.Database.AutoMigrate {
			if cfg.IsProduction() {
				return nil, nil, fmt.Errorf("DB_AUTO_MIGRATE is enabled in production")
			}
			log.Println("🔄 Running GORM AutoMigrate (development only) ...")
			if err := database.AutoMigrate(db, logger); err != nil {
				return nil, nil, err
			}
		}
		return repository.NewInterviewRepository(db), func() { _ = database.CloseDB(db) }, nil
	}

	client, err := repository.NewPostgrestClient(cfg.Supabase.URL, cfg.StoreKey())
	if err != nil {
		return nil, nil, err
	}
	return repository.NewInterviewRESTRepository(client, cfg.Supabase.Table), func() {}, nil
}
