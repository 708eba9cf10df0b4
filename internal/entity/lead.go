package entity

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadHot  LeadStatus = "Hot"
	LeadWarm LeadStatus = "Warm"
	LeadCold LeadStatus = "Cold"
)

const (
	HotScoreThreshold  = 80.0
	WarmScoreThreshold = 50.0
	MaxLeadScore       = 100.0
)

type Lead struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Engagement float64    `json:"engagement"`
	Budget     float64    `json:"budget"`
	Score      float64    `json:"score"`
	Status     LeadStatus `json:"status"` // Hot, Warm, Cold
	ScoredAt   time.Time  `json:"scored_at"`
}

type LeadRepository interface {
	Append(ctx context.Context, leads ...*Lead) error
	List(ctx context.Context) ([]Lead, error)
}

// NewScoredLead derives score and status from engagement and budget.
func NewScoredLead(name string, engagement, budget float64) *Lead {
	score := ScoreLead(engagement, budget)
	return &Lead{
		ID:         uuid.New().String(),
		Name:       name,
		Engagement: engagement,
		Budget:     budget,
		Score:      score,
		Status:     StatusForScore(score),
		ScoredAt:   time.Now(),
	}
}

// ScoreLead weighs engagement (0-10 scale) at 60% and budget (per 100) at 40%,
// clamped to [0, 100] and rounded to 2 decimals.
func ScoreLead(engagement, budget float64) float64 {
	score := engagement*10*0.6 + budget/100*0.4
	score = math.Min(score, MaxLeadScore)
	score = math.Max(score, 0)
	return math.Round(score*100) / 100
}

func StatusForScore(score float64) LeadStatus {
	switch {
	case score >= HotScoreThreshold:
		return LeadHot
	case score >= WarmScoreThreshold:
		return LeadWarm
	default:
		return LeadCold
	}
}

func (l Lead) IsHot() bool {
	return l.Score >= HotScoreThreshold
}
