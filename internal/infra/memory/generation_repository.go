package memory

import (
	"context"
	"errors"

	"github.com/xavierca1/marketmind/internal/entity"
)

// GenerationRepository holds generated copy of a single kind for the process lifetime.
type GenerationRepository struct {
	records journal[entity.GenerationRecord]
}

func NewGenerationRepository() *GenerationRepository {
	return &GenerationRepository{}
}

func (r *GenerationRepository) Append(ctx context.Context, rec *entity.GenerationRecord) error {
	if rec == nil {
		return errors.New("nil generation record")
	}
	r.records.append(*rec)
	return nil
}

func (r *GenerationRepository) List(ctx context.Context) ([]entity.GenerationRecord, error) {
	return r.records.snapshot(), nil
}

func (r *GenerationRepository) Count(ctx context.Context) (int, error) {
	return r.records.len(), nil
}
