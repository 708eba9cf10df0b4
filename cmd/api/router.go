package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/marketmind/internal/config"
	"github.com/xavierca1/marketmind/internal/infra/http/handlers"
	"github.com/xavierca1/marketmind/internal/infra/http/middleware"
)

type routeHandlers struct {
	health    *handlers.HealthHandler
	campaign  *handlers.GenerationHandler
	pitch     *handlers.GenerationHandler
	insights  *handlers.InsightsHandler
	sentiment *handlers.SentimentHandler
	leads     *handlers.LeadHandler
	dashboard *handlers.DashboardHandler
	admin     *handlers.AdminHandler
}

func newRouter(cfg config.Config, logger *zap.Logger, h routeHandlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/", h.health.Root)
	r.Get("/health", h.health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/generate_campaign", h.campaign.Handle)
	r.Post("/generate_pitch", h.pitch.Handle)
	r.Post("/insights", h.insights.HandleInsights)
	r.Post("/competitor_analysis", h.insights.HandleCompetitor)
	r.Post("/sentiment", h.sentiment.Handle)
	r.Post("/score_leads", h.leads.ScoreLeads)

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/summary", h.dashboard.Summary)
		r.Get("/lead-distribution", h.dashboard.LeadDistribution)
		r.Get("/campaign-performance", h.dashboard.CampaignPerformance)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/metrics", h.admin.Metrics)
		r.Get("/api-calls-daily", h.admin.DailyAPICalls)
		r.Get("/users", h.admin.Users)
		r.Put("/users/{id}/toggle", h.admin.ToggleUser)
		r.Get("/revenue", h.admin.Revenue)
	})

	return r
}
