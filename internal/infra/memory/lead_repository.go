package memory

import (
	"context"

	"github.com/xavierca1/marketmind/internal/entity"
)

type LeadRepository struct {
	leads journal[entity.Lead]
}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{}
}

// Append stores all leads of one scoring call in a single step.
func (r *LeadRepository) Append(ctx context.Context, leads ...*entity.Lead) error {
	batch := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if l != nil {
			batch = append(batch, *l)
		}
	}
	r.leads.append(batch...)
	return nil
}

func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	return r.leads.snapshot(), nil
}
