package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/trungle-dev/content-planner/internal/api"
	"github.com/trungle-dev/content-planner/internal/config"
	"github.com/trungle-dev/content-planner/internal/repository/postgres"
	"github.com/trungle-dev/content-planner/internal/repository/redis"
	"github.com/trungle-dev/content-planner/internal/service"
)

// setupLogger configures zerolog: console writer outside production, plus an
// optional rotating file sink.
func setupLogger(cfg config.LoggingConfig) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	writers := []io.Writer{}
	if os.Getenv("ENV") != "production" {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		writers = append(writers, os.Stderr)
	}

	if cfg.File != "" {
		fileWriter, err := rotatelogs.New(
			cfg.File+".%Y%m%d",
			rotatelogs.WithLinkName(cfg.File),
			rotatelogs.WithRotationTime(cfg.RotationTime),
			rotatelogs.WithMaxAge(cfg.MaxAge),
		)
		if err != nil {
			log.Warn().Err(err).Str("file", cfg.File).Msg("failed to open log file, console only")
		} else {
			writers = append(writers, fileWriter)
		}
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
}

func main() {
	// Load .env file - try multiple locations
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.Logging)

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Msg("Starting content planner API server")

	// Initialize database
	db, err := postgres.NewDB(context.Background(), cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Initialize Redis
	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Bootstrap the default workspace so first-run clients always have one
	workspaceService := service.NewWorkspaceService(
		postgres.NewWorkspaceRepository(db),
		postgres.NewBrandRepository(db),
		postgres.NewFunnelRepository(db),
		postgres.NewCampaignRepository(db),
	)
	if ws, err := workspaceService.EnsureDefault(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to ensure default workspace")
	} else {
		log.Info().Str("workspace_id", ws.ID.String()).Str("slug", ws.Slug).Msg("Default workspace ready")
	}

	// Initialize router
	router := api.NewRouter(cfg, db, redisClient)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
