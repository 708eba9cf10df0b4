package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/marketmind/internal/usecase"
)

type InsightsHandler struct {
	Insights   *usecase.InsightsUseCase
	Competitor *usecase.CompetitorAnalysisUseCase
	Logger     *zap.Logger
}

func NewInsightsHandler(
	insights *usecase.InsightsUseCase,
	competitor *usecase.CompetitorAnalysisUseCase,
	logger *zap.Logger,
) *InsightsHandler {
	return &InsightsHandler{Insights: insights, Competitor: competitor, Logger: logger}
}

func (h *InsightsHandler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerationInput
	if !decodeBody(w, r, &input) {
		return
	}

	insights, err := h.Insights.Execute(r.Context(), input)
	if err != nil {
		h.logFailure("insights", err)
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, insights)
}

func (h *InsightsHandler) HandleCompetitor(w http.ResponseWriter, r *http.Request) {
	var input usecase.CompetitorInput
	if !decodeBody(w, r, &input) {
		return
	}

	analysis, err := h.Competitor.Execute(r.Context(), input)
	if err != nil {
		h.logFailure("competitor analysis", err)
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (h *InsightsHandler) logFailure(op string, err error) {
	if usecase.IsTechnicalError(err) {
		h.Logger.Error(op+" failed", zap.Error(err))
	}
}
