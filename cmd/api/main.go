package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/marketmind/internal/config"
	"github.com/xavierca1/marketmind/internal/entity"
	"github.com/xavierca1/marketmind/internal/infra/http/handlers"
	"github.com/xavierca1/marketmind/internal/infra/http/middleware"
	"github.com/xavierca1/marketmind/internal/infra/integration/groq"
	"github.com/xavierca1/marketmind/internal/infra/integration/huggingface"
	"github.com/xavierca1/marketmind/internal/infra/memory"
	"github.com/xavierca1/marketmind/internal/logger"
	"github.com/xavierca1/marketmind/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logg.Sync()

	// 1. Providers
	groqClient := groq.NewClient(cfg.GroqKey, cfg.GroqBaseURL, cfg.GroqModel, cfg.ProviderTimeout)
	hfClient := huggingface.NewClient(cfg.HFToken, cfg.HFTextGenURL, cfg.HFSentimentURL, cfg.HFMaxNewTokens, cfg.ProviderTimeout)
	if !groqClient.Configured() {
		logg.Warn("GROQ_KEY not set, every generation will go to Hugging Face")
	}
	if !hfClient.Configured() {
		logg.Warn("HF_TOKEN not set, fallback generation and sentiment are unavailable")
	}

	// 2. Stores
	stores := usecase.Stores{
		Campaigns: memory.NewGenerationRepository(),
		Pitches:   memory.NewGenerationRepository(),
		Leads:     memory.NewLeadRepository(),
		Usage:     memory.NewUsageRepository(),
		Users:     memory.NewUserRepository(entity.SeedUsers()),
	}

	// 3. UseCases
	generator := usecase.NewGenerator(groqClient, hfClient, logg)
	generator.OnResult = func(res usecase.ProviderResult) {
		middleware.RecordProviderCall(res.Provider, res.Outcome())
	}

	campaignUC := usecase.NewGenerateContentUseCase(entity.KindCampaign, generator, stores.Campaigns, stores.Usage)
	pitchUC := usecase.NewGenerateContentUseCase(entity.KindPitch, generator, stores.Pitches, stores.Usage)
	insightsUC := usecase.NewInsightsUseCase(generator, stores.Usage)
	competitorUC := usecase.NewCompetitorAnalysisUseCase(generator, stores.Usage)
	sentimentUC := usecase.NewAnalyzeSentimentUseCase(hfClient)
	scoreLeadsUC := usecase.NewScoreLeadsUseCase(stores.Leads)

	// 4. Handlers
	h := routeHandlers{
		health:    handlers.NewHealthHandler(groqClient, hfClient),
		campaign:  handlers.NewGenerationHandler(campaignUC, logg),
		pitch:     handlers.NewGenerationHandler(pitchUC, logg),
		insights:  handlers.NewInsightsHandler(insightsUC, competitorUC, logg),
		sentiment: handlers.NewSentimentHandler(sentimentUC, logg),
		leads:     handlers.NewLeadHandler(scoreLeadsUC, logg),
		dashboard: handlers.NewDashboardHandler(usecase.NewDashboardUseCase(stores), logg),
		admin:     handlers.NewAdminHandler(usecase.NewAdminUseCase(stores), logg),
	}

	// 5. Server
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, logg, h),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Generation can wait on two providers in a row.
		WriteTimeout: 2*cfg.ProviderTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logg.Info("MarketMind backend listening",
			zap.String("addr", srv.Addr),
			zap.String("mode", cfg.Mode),
			zap.String("groq_model", cfg.GroqModel),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("graceful shutdown failed", zap.Error(err))
	}
}
