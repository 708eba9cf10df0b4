package memory

import (
	"context"

	"github.com/xavierca1/marketmind/internal/entity"
)

type UsageRepository struct {
	events journal[entity.UsageEvent]
}

func NewUsageRepository() *UsageRepository {
	return &UsageRepository{}
}

func (r *UsageRepository) Append(ctx context.Context, ev entity.UsageEvent) error {
	r.events.append(ev)
	return nil
}

func (r *UsageRepository) List(ctx context.Context) ([]entity.UsageEvent, error) {
	return r.events.snapshot(), nil
}
