package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/marketmind/internal/infra/http/middleware"
	"github.com/xavierca1/marketmind/internal/usecase"
)

// GenerationHandler serves one copy endpoint. The generated text is returned
// under the content kind's name: {"campaign": ...} or {"pitch": ...}.
type GenerationHandler struct {
	UseCase *usecase.GenerateContentUseCase
	Logger  *zap.Logger
}

func NewGenerationHandler(uc *usecase.GenerateContentUseCase, logger *zap.Logger) *GenerationHandler {
	return &GenerationHandler{UseCase: uc, Logger: logger}
}

func (h *GenerationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerationInput
	if !decodeBody(w, r, &input) {
		return
	}

	output, err := h.UseCase.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			h.Logger.Error("generation failed", zap.String("kind", string(h.UseCase.Kind)), zap.Error(err))
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordGeneration(string(h.UseCase.Kind))
	h.Logger.Info("copy generated",
		zap.String("kind", string(h.UseCase.Kind)),
		zap.String("id", output.ID),
		zap.Int("chars", len(output.Content)),
	)

	writeJSON(w, http.StatusOK, map[string]string{string(h.UseCase.Kind): output.Content})
}
