package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/marketmind/internal/infra/http/middleware"
	"github.com/xavierca1/marketmind/internal/usecase"
)

type SentimentHandler struct {
	UseCase *usecase.AnalyzeSentimentUseCase
	Logger  *zap.Logger
}

func NewSentimentHandler(uc *usecase.AnalyzeSentimentUseCase, logger *zap.Logger) *SentimentHandler {
	return &SentimentHandler{UseCase: uc, Logger: logger}
}

// Handle never fails the request on provider problems: clients get {"error": "Sentiment failed"} with 200.
func (h *SentimentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SentimentInput
	if !decodeBody(w, r, &input) {
		return
	}

	output, err := h.UseCase.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordSentimentFailure()
		h.Logger.Warn("sentiment classification failed", zap.Error(err))
		writeSoftError(w, "Sentiment failed")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
