package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UsageType string

const (
	UsageCampaign   UsageType = "campaign"
	UsagePitch      UsageType = "pitch"
	UsageInsights   UsageType = "insights"
	UsageCompetitor UsageType = "competitor"
)

// DateLayout is the day granularity used to bucket usage events.
const DateLayout = "2006-01-02"

type UsageEvent struct {
	ID   string    `json:"id"`
	Type UsageType `json:"type"`
	Date string    `json:"date"`
}

type UsageRepository interface {
	Append(ctx context.Context, ev UsageEvent) error
	List(ctx context.Context) ([]UsageEvent, error)
}

func NewUsageEvent(t UsageType, at time.Time) UsageEvent {
	return UsageEvent{
		ID:   uuid.New().String(),
		Type: t,
		Date: at.Format(DateLayout),
	}
}
