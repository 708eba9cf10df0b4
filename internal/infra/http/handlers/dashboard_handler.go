package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/marketmind/internal/usecase"
)

type DashboardHandler struct {
	UseCase *usecase.DashboardUseCase
	Logger  *zap.Logger
}

func NewDashboardHandler(uc *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{UseCase: uc, Logger: logger}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.UseCase.Summary(r.Context())
	if err != nil {
		h.fail(w, "dashboard summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) LeadDistribution(w http.ResponseWriter, r *http.Request) {
	dist, err := h.UseCase.LeadDistribution(r.Context())
	if err != nil {
		h.fail(w, "lead distribution", err)
		return
	}
	writeJSON(w, http.StatusOK, dist)
}

func (h *DashboardHandler) CampaignPerformance(w http.ResponseWriter, r *http.Request) {
	points, err := h.UseCase.CampaignPerformance(r.Context())
	if err != nil {
		h.fail(w, "campaign performance", err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (h *DashboardHandler) fail(w http.ResponseWriter, op string, err error) {
	h.Logger.Error(op+" failed", zap.Error(err))
	writeUseCaseError(w, err)
}
