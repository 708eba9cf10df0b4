package usecase

import (
	"context"

	"github.com/xavierca1/marketmind/internal/infra/integration/huggingface"
)

// TextProvider is a single LLM backend. Implementations return an error when
// they cannot produce text; the Generator decides what happens next.
type TextProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// TextGenerator always yields text: provider failures are absorbed.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) string
}

type SentimentClassifier interface {
	Classify(ctx context.Context, text string) ([]huggingface.LabelScore, error)
}
