package entity

import "fmt"

type Insights struct {
	MarketTrends        []string `json:"market_trends"`
	GrowthOpportunities []string `json:"growth_opportunities"`
	RecommendedStrategy string   `json:"recommended_strategy"`
	NextBestActions     []string `json:"next_best_actions"`
}

// FallbackInsights is returned when the model output cannot be decoded.
func FallbackInsights(product, audience string) Insights {
	return Insights{
		MarketTrends:        []string{fmt.Sprintf("Trend for %s", product)},
		GrowthOpportunities: []string{fmt.Sprintf("Opportunity in %s segment", audience)},
		RecommendedStrategy: fmt.Sprintf("Strategy for %s", product),
		NextBestActions:     []string{fmt.Sprintf("Run campaign targeting %s", audience)},
	}
}

type CompetitorAnalysis struct {
	Strengths               []string `json:"strengths"`
	Weaknesses              []string `json:"weaknesses"`
	DifferentiationStrategy string   `json:"differentiation_strategy"`
	PositioningAngle        string   `json:"positioning_angle"`
}

func FallbackCompetitorAnalysis(competitor, industry string) CompetitorAnalysis {
	return CompetitorAnalysis{
		Strengths:               []string{fmt.Sprintf("Established brand presence of %s", competitor)},
		Weaknesses:              []string{fmt.Sprintf("Generic positioning in the %s market", industry)},
		DifferentiationStrategy: fmt.Sprintf("Differentiate from %s with a focused %s offer", competitor, industry),
		PositioningAngle:        fmt.Sprintf("The specialist alternative to %s", competitor),
	}
}
