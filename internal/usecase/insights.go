package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/marketmind/internal/entity"
)

type InsightsUseCase struct {
	Generator TextGenerator
	Usage     entity.UsageRepository
	Now       func() time.Time
}

func NewInsightsUseCase(generator TextGenerator, usage entity.UsageRepository) *InsightsUseCase {
	return &InsightsUseCase{
		Generator: generator,
		Usage:     usage,
		Now:       time.Now,
	}
}

// Execute never fails on model output: undecodable output becomes the templated fallback.
func (uc *InsightsUseCase) Execute(ctx context.Context, input GenerationInput) (*entity.Insights, error) {
	if errs := ValidateGenerationInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	raw := uc.Generator.Generate(ctx, insightsPrompt(input.Product, input.Audience))

	insights, ok := ParseInsights(raw, input.Product, input.Audience)
	if ok {
		if err := uc.Usage.Append(ctx, entity.NewUsageEvent(entity.UsageInsights, uc.Now())); err != nil {
			return nil, storeError("log insights usage", err)
		}
	}

	return &insights, nil
}

// ParseInsights decodes model output into Insights. The boolean is false when
// the templated fallback was used.
func ParseInsights(raw, product, audience string) (entity.Insights, bool) {
	obj, err := decodeObject(extractJSON(raw),
		"market_trends", "growth_opportunities", "recommended_strategy", "next_best_actions")
	if err != nil {
		return entity.FallbackInsights(product, audience), false
	}

	return entity.Insights{
		MarketTrends:        stringList(obj["market_trends"]),
		GrowthOpportunities: stringList(obj["growth_opportunities"]),
		RecommendedStrategy: stringValue(obj["recommended_strategy"]),
		NextBestActions:     stringList(obj["next_best_actions"]),
	}, true
}
