package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/marketmind/internal/entity"
	"github.com/xavierca1/marketmind/internal/infra/integration/huggingface"
	"github.com/xavierca1/marketmind/internal/infra/memory"
	"github.com/xavierca1/marketmind/internal/usecase"
)

type generatorFunc func(ctx context.Context, prompt string) string

func (f generatorFunc) Generate(ctx context.Context, prompt string) string {
	return f(ctx, prompt)
}

type classifierFunc func(ctx context.Context, text string) ([]huggingface.LabelScore, error)

func (f classifierFunc) Classify(ctx context.Context, text string) ([]huggingface.LabelScore, error) {
	return f(ctx, text)
}

type fakeDependency struct {
	name       string
	configured bool
}

func (d fakeDependency) Name() string {
	return d.name
}

func (d fakeDependency) Configured() bool {
	return d.configured
}

type testServer struct {
	router http.Handler
	stores usecase.Stores
}

func newTestServer(t *testing.T, gen usecase.TextGenerator, classifier usecase.SentimentClassifier) *testServer {
	t.Helper()

	logger := zap.NewNop()
	stores := usecase.Stores{
		Campaigns: memory.NewGenerationRepository(),
		Pitches:   memory.NewGenerationRepository(),
		Leads:     memory.NewLeadRepository(),
		Usage:     memory.NewUsageRepository(),
		Users:     memory.NewUserRepository(entity.SeedUsers()),
	}

	campaign := NewGenerationHandler(
		usecase.NewGenerateContentUseCase(entity.KindCampaign, gen, stores.Campaigns, stores.Usage), logger)
	pitch := NewGenerationHandler(
		usecase.NewGenerateContentUseCase(entity.KindPitch, gen, stores.Pitches, stores.Usage), logger)
	insights := NewInsightsHandler(
		usecase.NewInsightsUseCase(gen, stores.Usage),
		usecase.NewCompetitorAnalysisUseCase(gen, stores.Usage),
		logger)
	sentiment := NewSentimentHandler(usecase.NewAnalyzeSentimentUseCase(classifier), logger)
	leads := NewLeadHandler(usecase.NewScoreLeadsUseCase(stores.Leads), logger)
	dashboard := NewDashboardHandler(usecase.NewDashboardUseCase(stores), logger)
	admin := NewAdminHandler(usecase.NewAdminUseCase(stores), logger)
	health := NewHealthHandler(
		fakeDependency{name: "groq", configured: true},
		fakeDependency{name: "huggingface", configured: false},
	)

	r := chi.NewRouter()
	r.Get("/", health.Root)
	r.Get("/health", health.Handle)
	r.Post("/generate_campaign", campaign.Handle)
	r.Post("/generate_pitch", pitch.Handle)
	r.Post("/insights", insights.HandleInsights)
	r.Post("/competitor_analysis", insights.HandleCompetitor)
	r.Post("/sentiment", sentiment.Handle)
	r.Post("/score_leads", leads.ScoreLeads)
	r.Get("/dashboard/summary", dashboard.Summary)
	r.Get("/dashboard/lead-distribution", dashboard.LeadDistribution)
	r.Get("/dashboard/campaign-performance", dashboard.CampaignPerformance)
	r.Get("/admin/metrics", admin.Metrics)
	r.Get("/admin/api-calls-daily", admin.DailyAPICalls)
	r.Get("/admin/users", admin.Users)
	r.Put("/admin/users/{id}/toggle", admin.ToggleUser)
	r.Get("/admin/revenue", admin.Revenue)

	return &testServer{router: r, stores: stores}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func staticGenerator(text string) usecase.TextGenerator {
	return generatorFunc(func(context.Context, string) string { return text })
}

func failingClassifier() usecase.SentimentClassifier {
	return classifierFunc(func(context.Context, string) ([]huggingface.LabelScore, error) {
		return nil, errors.New("model loading")
	})
}

func TestGenerateCampaign(t *testing.T) {
	srv := newTestServer(t, staticGenerator("Buy now!"), failingClassifier())

	rec := srv.do(t, http.MethodPost, "/generate_campaign", `{"product":"Shoes","audience":"Runners"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]string{"campaign": "Buy now!"}, decode[map[string]string](t, rec))

	count, err := srv.stores.Campaigns.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGeneratePitchUsesPitchKey(t *testing.T) {
	srv := newTestServer(t, staticGenerator("Our pitch"), failingClassifier())

	rec := srv.do(t, http.MethodPost, "/generate_pitch", `{"product":"CRM","audience":"SMBs"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"pitch": "Our pitch"}, decode[map[string]string](t, rec))
}

func TestGenerateRejectsBadInput(t *testing.T) {
	srv := newTestServer(t, staticGenerator("unused"), failingClassifier())

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed json", `{"product":`, http.StatusBadRequest, "INVALID_JSON"},
		{"blank product", `{"product":"  ","audience":"Runners"}`, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"missing audience", `{"product":"Shoes"}`, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/generate_campaign", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			body := decode[ErrorResponse](t, rec)
			assert.Equal(t, tt.code, body.Error)
			assert.NotEmpty(t, body.Message)
		})
	}

	count, err := srv.stores.Campaigns.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInsights(t *testing.T) {
	raw := "```json\n" + `{"market_trends":["AI"],"growth_opportunities":["EU"],"recommended_strategy":"Go wide","next_best_actions":["Launch"]}` + "\n```"
	srv := newTestServer(t, staticGenerator(raw), failingClassifier())

	rec := srv.do(t, http.MethodPost, "/insights", `{"product":"Shoes","audience":"Runners"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decode[entity.Insights](t, rec)
	assert.Equal(t, []string{"AI"}, got.MarketTrends)
	assert.Equal(t, "Go wide", got.RecommendedStrategy)
}

func TestInsightsFallbackOnProse(t *testing.T) {
	srv := newTestServer(t, staticGenerator("I cannot answer in JSON"), failingClassifier())

	rec := srv.do(t, http.MethodPost, "/insights", `{"product":"Shoes","audience":"Runners"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.FallbackInsights("Shoes", "Runners"), decode[entity.Insights](t, rec))
}

func TestCompetitorAnalysis(t *testing.T) {
	raw := `{"strengths":["Brand"],"weaknesses":["Price"],"differentiation_strategy":"Undercut","positioning_angle":"Value"}`
	srv := newTestServer(t, staticGenerator(raw), failingClassifier())

	rec := srv.do(t, http.MethodPost, "/competitor_analysis", `{"competitor":"Acme","industry":"Retail"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decode[entity.CompetitorAnalysis](t, rec)
	assert.Equal(t, []string{"Brand"}, got.Strengths)
	assert.Equal(t, "Value", got.PositioningAngle)

	rec = srv.do(t, http.MethodPost, "/competitor_analysis", `{"competitor":"","industry":"Retail"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSentiment(t *testing.T) {
	classifier := classifierFunc(func(_ context.Context, text string) ([]huggingface.LabelScore, error) {
		return []huggingface.LabelScore{
			{Label: "LABEL_0", Score: 0.01},
			{Label: "LABEL_2", Score: 0.98765},
		}, nil
	})
	srv := newTestServer(t, staticGenerator("unused"), classifier)

	rec := srv.do(t, http.MethodPost, "/sentiment", `{"text":"I love it"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decode[usecase.SentimentOutput](t, rec)
	assert.Equal(t, "Positive", got.Sentiment)
	assert.Equal(t, 0.988, got.Confidence)
}

func TestSentimentFailureIsSoft(t *testing.T) {
	srv := newTestServer(t, staticGenerator("unused"), failingClassifier())

	rec := srv.do(t, http.MethodPost, "/sentiment", `{"text":"meh"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"Sentiment failed"}`, rec.Body.String())
}

func TestScoreLeads(t *testing.T) {
	srv := newTestServer(t, staticGenerator("unused"), failingClassifier())

	rec := srv.do(t, http.MethodPost, "/score_leads",
		`[{"name":"Small","engagement":5,"budget":1000},{"name":"Big","engagement":10,"budget":5000}]`)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]usecase.ScoredLeadOutput](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, usecase.ScoredLeadOutput{Name: "Big", Score: 80, Status: "Hot"}, got[0])
	assert.Equal(t, usecase.ScoredLeadOutput{Name: "Small", Score: 34, Status: "Cold"}, got[1])
}

func TestScoreLeadsEmptyArray(t *testing.T) {
	srv := newTestServer(t, staticGenerator("unused"), failingClassifier())

	for _, body := range []string{`[]`, `null`} {
		rec := srv.do(t, http.MethodPost, "/score_leads", body)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	}
}

func TestScoreLeadsRejectsObject(t *testing.T) {
	srv := newTestServer(t, staticGenerator("unused"), failingClassifier())

	rec := srv.do(t, http.MethodPost, "/score_leads", `{"name":"Solo"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_JSON", decode[ErrorResponse](t, rec).Error)
}

func TestDashboardAfterActivity(t *testing.T) {
	srv := newTestServer(t, staticGenerator("copy"), failingClassifier())

	srv.do(t, http.MethodPost, "/generate_campaign", `{"product":"Shoes","audience":"Runners"}`)
	srv.do(t, http.MethodPost, "/score_leads",
		`[{"name":"Big","engagement":10,"budget":5000},{"name":"Mid","engagement":5,"budget":5000},{"name":"Low","engagement":1,"budget":10}]`)

	rec := srv.do(t, http.MethodGet, "/dashboard/summary", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"total_campaigns":1,"total_leads":3,"conversion_rate":33.33,"revenue_estimate":12000}`,
		rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/dashboard/lead-distribution", "")
	assert.JSONEq(t, `{"hot":1,"warm":1,"cold":1}`, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/dashboard/campaign-performance", "")
	assert.Len(t, decode[[]usecase.CampaignPerformancePoint](t, rec), 6)
}

func TestAdminEndpoints(t *testing.T) {
	srv := newTestServer(t, staticGenerator("copy"), failingClassifier())
	srv.do(t, http.MethodPost, "/generate_pitch", `{"product":"CRM","audience":"SMBs"}`)

	rec := srv.do(t, http.MethodGet, "/admin/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"total_api_calls":1,"campaigns_created":0,"pitches_created":1,"leads_scored":0,"active_users":4,"estimated_revenue":1500}`,
		rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/admin/api-calls-daily", "")
	daily := decode[[]usecase.DailyCallsPoint](t, rec)
	require.Len(t, daily, 7)
	assert.Equal(t, 1, daily[6].Calls)

	rec = srv.do(t, http.MethodGet, "/admin/users", "")
	users := decode[[]entity.User](t, rec)
	assert.Equal(t, entity.SeedUsers(), users)

	rec = srv.do(t, http.MethodGet, "/admin/revenue", "")
	revenue := decode[[]usecase.RevenuePoint](t, rec)
	require.Len(t, revenue, 6)
	assert.Equal(t, 1500.0, revenue[5].Revenue)
}

func TestToggleUser(t *testing.T) {
	srv := newTestServer(t, staticGenerator("unused"), failingClassifier())

	rec := srv.do(t, http.MethodPut, "/admin/users/1/toggle", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.User{ID: 1, Name: "Alex Johnson", Role: "Admin", Status: entity.UserInactive}, decode[entity.User](t, rec))

	rec = srv.do(t, http.MethodPut, "/admin/users/99/toggle", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPut, "/admin/users/abc/toggle", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode[ErrorResponse](t, rec).Error)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, staticGenerator("unused"), failingClassifier())

	rec := srv.do(t, http.MethodGet, "/", "")
	assert.JSONEq(t, `{"status":"MarketMind backend running"}`, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	got := decode[HealthResponse](t, rec)
	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, Version, got.Version)
	assert.Equal(t, map[string]string{"groq": "configured", "huggingface": "not configured"}, got.Dependencies)
}
