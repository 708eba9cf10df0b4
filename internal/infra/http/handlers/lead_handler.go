package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/marketmind/internal/infra/http/middleware"
	"github.com/xavierca1/marketmind/internal/usecase"
)

type LeadHandler struct {
	scoreLeads *usecase.ScoreLeadsUseCase
	logger     *zap.Logger
}

func NewLeadHandler(scoreLeads *usecase.ScoreLeadsUseCase, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		scoreLeads: scoreLeads,
		logger:     logger,
	}
}

// ScoreLeads accepts a JSON array of leads and returns them scored, best first.
func (h *LeadHandler) ScoreLeads(w http.ResponseWriter, r *http.Request) {
	var req []usecase.LeadInput
	if !decodeBody(w, r, &req) {
		return
	}

	scored, err := h.scoreLeads.Execute(r.Context(), req)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			h.logger.Error("failed to score leads", zap.Error(err))
		}
		writeUseCaseError(w, err)
		return
	}

	for _, l := range scored {
		middleware.RecordLeadScored(l.Status)
	}
	h.logger.Info("leads scored", zap.Int("count", len(scored)))

	writeJSON(w, http.StatusOK, scored)
}
