package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/marketmind/internal/entity"
)

type CompetitorAnalysisUseCase struct {
	Generator TextGenerator
	Usage     entity.UsageRepository
	Now       func() time.Time
}

func NewCompetitorAnalysisUseCase(generator TextGenerator, usage entity.UsageRepository) *CompetitorAnalysisUseCase {
	return &CompetitorAnalysisUseCase{
		Generator: generator,
		Usage:     usage,
		Now:       time.Now,
	}
}

func (uc *CompetitorAnalysisUseCase) Execute(ctx context.Context, input CompetitorInput) (*entity.CompetitorAnalysis, error) {
	if errs := ValidateCompetitorInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	raw := uc.Generator.Generate(ctx, competitorPrompt(input.Competitor, input.Industry))

	analysis, ok := ParseCompetitorAnalysis(raw, input.Competitor, input.Industry)
	if ok {
		if err := uc.Usage.Append(ctx, entity.NewUsageEvent(entity.UsageCompetitor, uc.Now())); err != nil {
			return nil, storeError("log competitor usage", err)
		}
	}

	return &analysis, nil
}

func ParseCompetitorAnalysis(raw, competitor, industry string) (entity.CompetitorAnalysis, bool) {
	obj, err := decodeObject(extractJSON(raw),
		"strengths", "weaknesses", "differentiation_strategy", "positioning_angle")
	if err != nil {
		return entity.FallbackCompetitorAnalysis(competitor, industry), false
	}

	return entity.CompetitorAnalysis{
		Strengths:               stringList(obj["strengths"]),
		Weaknesses:              stringList(obj["weaknesses"]),
		DifferentiationStrategy: stringValue(obj["differentiation_strategy"]),
		PositioningAngle:        stringValue(obj["positioning_angle"]),
	}, true
}
