package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrSentimentFailed = errors.New("sentiment failed")

// sentimentLabels covers both the LABEL_n scheme of twitter-roberta-base-sentiment
// and the named labels of its -latest revision.
var sentimentLabels = map[string]string{
	"label_0":  "Negative",
	"label_1":  "Neutral",
	"label_2":  "Positive",
	"negative": "Negative",
	"neutral":  "Neutral",
	"positive": "Positive",
}

type AnalyzeSentimentUseCase struct {
	Classifier SentimentClassifier
}

func NewAnalyzeSentimentUseCase(classifier SentimentClassifier) *AnalyzeSentimentUseCase {
	return &AnalyzeSentimentUseCase{Classifier: classifier}
}

// Execute returns an error wrapping ErrSentimentFailed for any provider or mapping problem.
func (uc *AnalyzeSentimentUseCase) Execute(ctx context.Context, input SentimentInput) (*SentimentOutput, error) {
	scores, err := uc.Classifier.Classify(ctx, input.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSentimentFailed, err)
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: no labels returned", ErrSentimentFailed)
	}

	top := scores[0]
	for _, s := range scores[1:] {
		if s.Score > top.Score {
			top = s
		}
	}

	sentiment, ok := sentimentLabels[strings.ToLower(top.Label)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown label %q", ErrSentimentFailed, top.Label)
	}

	return &SentimentOutput{
		Sentiment:  sentiment,
		Confidence: math.Round(top.Score*1000) / 1000,
	}, nil
}
