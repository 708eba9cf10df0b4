package usecase

import (
	"context"
	"sort"

	"github.com/xavierca1/marketmind/internal/entity"
)

type ScoreLeadsUseCase struct {
	Repo entity.LeadRepository
}

func NewScoreLeadsUseCase(repo entity.LeadRepository) *ScoreLeadsUseCase {
	return &ScoreLeadsUseCase{Repo: repo}
}

// Execute scores every lead, stores them and returns them by score descending.
func (uc *ScoreLeadsUseCase) Execute(ctx context.Context, inputs []LeadInput) ([]ScoredLeadOutput, error) {
	if errs := ValidateLeadInputs(inputs); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	leads := make([]*entity.Lead, 0, len(inputs))
	for _, in := range inputs {
		leads = append(leads, entity.NewScoredLead(in.Name, in.Engagement, in.Budget))
	}

	if err := uc.Repo.Append(ctx, leads...); err != nil {
		return nil, storeError("store scored leads", err)
	}

	scored := make([]ScoredLeadOutput, 0, len(leads))
	for _, l := range leads {
		scored = append(scored, ScoredLeadOutput{
			Name:   l.Name,
			Score:  l.Score,
			Status: string(l.Status),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored, nil
}
