package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/trungle-dev/content-planner/internal/ai/gemini"
	"github.com/trungle-dev/content-planner/internal/api/handler"
	custommw "github.com/trungle-dev/content-planner/internal/api/middleware"
	"github.com/trungle-dev/content-planner/internal/config"
	"github.com/trungle-dev/content-planner/internal/repository/postgres"
	"github.com/trungle-dev/content-planner/internal/repository/redis"
	"github.com/trungle-dev/content-planner/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Repositories
	workspaceRepo := postgres.NewWorkspaceRepository(db)
	brandRepo := postgres.NewBrandRepository(db)
	funnelRepo := postgres.NewFunnelRepository(db)
	campaignRepo := postgres.NewCampaignRepository(db)
	contentRepo := postgres.NewContentRepository(db)

	// Redis-backed components
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.Burst,
	)
	reportCache := redis.NewReportCache(redisClient)

	// AI gateway
	gateway := gemini.NewProvider(cfg.Gemini)
	if !gateway.IsConfigured() {
		log.Warn().Msg("Gemini API key is empty, AI endpoints will fail")
	}

	// Services
	workspaceService := service.NewWorkspaceService(workspaceRepo, brandRepo, funnelRepo, campaignRepo)
	contentService := service.NewContentService(contentRepo, workspaceRepo, reportCache)
	reportService := service.NewReportService(contentRepo, workspaceRepo, funnelRepo, reportCache)
	calendarService := service.NewCalendarService(contentRepo)
	plannerService := service.NewPlannerService(
		workspaceRepo,
		brandRepo,
		funnelRepo,
		campaignRepo,
		contentRepo,
		gateway,
		reportCache,
		cfg.Generation.MaxRangeDays,
	)
	aiService := service.NewAIService(gateway, brandRepo)

	// Handlers
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	contentHandler := handler.NewContentHandler(contentService)
	reportHandler := handler.NewReportHandler(reportService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	aiHandler := handler.NewAIHandler(plannerService, aiService)

	rateLimitMiddleware := custommw.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		r.Group(func(r chi.Router) {
			r.Use(rateLimitMiddleware.Limit)

			// Workspace routes
			r.Route("/workspaces", func(r chi.Router) {
				r.Get("/", workspaceHandler.List)
				r.Post("/", workspaceHandler.Create)
				r.Get("/default", workspaceHandler.GetDefault)

				r.Route("/{workspaceID}", func(r chi.Router) {
					r.Use(custommw.WorkspaceContext)

					r.Get("/", workspaceHandler.Get)
					r.Delete("/", workspaceHandler.Delete)

					r.Get("/brand", workspaceHandler.GetBrand)
					r.Put("/brand", workspaceHandler.UpsertBrand)
					r.Get("/funnel", workspaceHandler.GetFunnel)
					r.Put("/funnel", workspaceHandler.UpsertFunnel)

					r.Route("/campaigns", func(r chi.Router) {
						r.Get("/", workspaceHandler.ListCampaigns)
						r.Post("/", workspaceHandler.CreateCampaign)
						r.Delete("/{campaignID}", workspaceHandler.DeleteCampaign)
					})
				})
			})

			// Content routes
			r.Route("/content", func(r chi.Router) {
				r.Get("/", contentHandler.List)
				r.Post("/", contentHandler.Create)

				r.Route("/{contentID}", func(r chi.Router) {
					r.Get("/", contentHandler.Get)
					r.Patch("/", contentHandler.Update)
					r.Delete("/", contentHandler.Delete)
				})
			})

			// Dashboard routes
			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/report", reportHandler.Report)
				r.Get("/stats", reportHandler.Stats)
				r.Get("/audit/{workspaceID}", reportHandler.Audit)
				r.Get("/strategist/{workspaceID}", reportHandler.Strategist)
			})

			// AI routes
			r.Route("/ai", func(r chi.Router) {
				r.Post("/plan", aiHandler.GeneratePlan)
				r.Post("/content", aiHandler.WriteContent)
				r.Post("/rewrite", aiHandler.Rewrite)
				r.Post("/image-prompt", aiHandler.ImagePrompt)
			})

			// Calendar routes
			r.Get("/calendar/{year}/{month}", calendarHandler.Month)
		})
	})

	return r
}
