package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/xavierca1/marketmind/internal/entity"
)

// GenerateContentUseCase produces one kind of copy (campaign or pitch),
// stores it and logs a usage event.
type GenerateContentUseCase struct {
	Kind      entity.ContentKind
	Generator TextGenerator
	Repo      entity.GenerationRepository
	Usage     entity.UsageRepository
	Now       func() time.Time
}

func NewGenerateContentUseCase(
	kind entity.ContentKind,
	generator TextGenerator,
	repo entity.GenerationRepository,
	usage entity.UsageRepository,
) *GenerateContentUseCase {
	return &GenerateContentUseCase{
		Kind:      kind,
		Generator: generator,
		Repo:      repo,
		Usage:     usage,
		Now:       time.Now,
	}
}

func (uc *GenerateContentUseCase) Execute(ctx context.Context, input GenerationInput) (*GenerationOutput, error) {
	if errs := ValidateGenerationInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	prompt, usageType, err := uc.promptFor(input)
	if err != nil {
		return nil, err
	}

	content := uc.Generator.Generate(ctx, prompt)

	rec, err := entity.NewGenerationRecord(uc.Kind, input.Product, input.Audience, content)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_RECORD", Message: err.Error()}
	}
	rec.CreatedAt = uc.Now()

	if err := uc.Repo.Append(ctx, rec); err != nil {
		return nil, storeError("store "+string(uc.Kind), err)
	}

	if err := uc.Usage.Append(ctx, entity.NewUsageEvent(usageType, rec.CreatedAt)); err != nil {
		return nil, storeError("log "+string(uc.Kind)+" usage", err)
	}

	return &GenerationOutput{ID: rec.ID, Content: content}, nil
}

func (uc *GenerateContentUseCase) promptFor(input GenerationInput) (string, entity.UsageType, error) {
	switch uc.Kind {
	case entity.KindCampaign:
		return campaignPrompt(input.Product, input.Audience), entity.UsageCampaign, nil
	case entity.KindPitch:
		return pitchPrompt(input.Product, input.Audience), entity.UsagePitch, nil
	default:
		return "", "", &TechnicalError{Code: "UNKNOWN_KIND", Message: fmt.Sprintf("unsupported content kind %q", uc.Kind)}
	}
}
