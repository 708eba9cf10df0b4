package usecase

import (
	"context"
	"math"

	"github.com/xavierca1/marketmind/internal/entity"
)

// Revenue weights for the dashboard estimate. These are placeholder business
// figures, not accounting data.
const (
	CampaignValue = 2000
	PitchValue    = 1500
	HotLeadValue  = 10000
)

// reportMonths labels the six synthetic monthly buckets.
var reportMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// Stores groups the repositories the read side scans.
type Stores struct {
	Campaigns entity.GenerationRepository
	Pitches   entity.GenerationRepository
	Leads     entity.LeadRepository
	Usage     entity.UsageRepository
	Users     entity.UserRepository
}

// totals is one consistent read of the store counters.
type totals struct {
	campaigns int
	pitches   int
	leads     []entity.Lead
	hot       int
}

func (t totals) revenue() int {
	return t.campaigns*CampaignValue + t.pitches*PitchValue + t.hot*HotLeadValue
}

func readTotals(ctx context.Context, s Stores) (totals, error) {
	var t totals
	var err error

	if t.campaigns, err = s.Campaigns.Count(ctx); err != nil {
		return t, storeError("count campaigns", err)
	}
	if t.pitches, err = s.Pitches.Count(ctx); err != nil {
		return t, storeError("count pitches", err)
	}
	if t.leads, err = s.Leads.List(ctx); err != nil {
		return t, storeError("list leads", err)
	}
	for _, l := range t.leads {
		if l.IsHot() {
			t.hot++
		}
	}
	return t, nil
}

type DashboardUseCase struct {
	Stores Stores
}

func NewDashboardUseCase(stores Stores) *DashboardUseCase {
	return &DashboardUseCase{Stores: stores}
}

func (uc *DashboardUseCase) Summary(ctx context.Context) (*SummaryOutput, error) {
	t, err := readTotals(ctx, uc.Stores)
	if err != nil {
		return nil, err
	}

	conversion := 0.0
	if len(t.leads) > 0 {
		conversion = round2(float64(t.hot) / float64(len(t.leads)) * 100)
	}

	return &SummaryOutput{
		TotalCampaigns:  t.campaigns + t.pitches,
		TotalLeads:      len(t.leads),
		ConversionRate:  conversion,
		RevenueEstimate: t.revenue(),
	}, nil
}

func (uc *DashboardUseCase) LeadDistribution(ctx context.Context) (*LeadDistributionOutput, error) {
	leads, err := uc.Stores.Leads.List(ctx)
	if err != nil {
		return nil, storeError("list leads", err)
	}

	out := &LeadDistributionOutput{}
	for _, l := range leads {
		switch {
		case l.Score >= entity.HotScoreThreshold:
			out.Hot++
		case l.Score >= entity.WarmScoreThreshold:
			out.Warm++
		default:
			out.Cold++
		}
	}
	return out, nil
}

// CampaignPerformance derives a six-month series by stepping back from the
// current totals: one campaign and two leads per month.
func (uc *DashboardUseCase) CampaignPerformance(ctx context.Context) ([]CampaignPerformancePoint, error) {
	t, err := readTotals(ctx, uc.Stores)
	if err != nil {
		return nil, err
	}

	last := len(reportMonths) - 1
	points := make([]CampaignPerformancePoint, 0, len(reportMonths))
	for i, month := range reportMonths {
		points = append(points, CampaignPerformancePoint{
			Month:     month,
			Campaigns: max(t.campaigns-(last-i), 0),
			Leads:     max(len(t.leads)-(last-i)*2, 0),
		})
	}
	return points, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
