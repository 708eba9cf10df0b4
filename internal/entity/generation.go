package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ContentKind string

const (
	KindCampaign ContentKind = "campaign"
	KindPitch    ContentKind = "pitch"
)

// GenerationRecord is one piece of generated copy. Records are append-only.
type GenerationRecord struct {
	ID        string      `json:"id"`
	Kind      ContentKind `json:"kind"`
	Product   string      `json:"product"`
	Audience  string      `json:"audience"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

type GenerationRepository interface {
	Append(ctx context.Context, rec *GenerationRecord) error
	List(ctx context.Context) ([]GenerationRecord, error)
	Count(ctx context.Context) (int, error)
}

func NewGenerationRecord(kind ContentKind, product, audience, content string) (*GenerationRecord, error) {
	rec := &GenerationRecord{
		ID:        uuid.New().String(),
		Kind:      kind,
		Product:   product,
		Audience:  audience,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *GenerationRecord) Validate() error {
	if r.Kind != KindCampaign && r.Kind != KindPitch {
		return errors.New("kind must be campaign or pitch")
	}
	if strings.TrimSpace(r.Product) == "" {
		return errors.New("product is required")
	}
	if strings.TrimSpace(r.Audience) == "" {
		return errors.New("audience is required")
	}
	return nil
}
