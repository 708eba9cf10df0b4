package usecase

import "fmt"

func campaignPrompt(product, audience string) string {
	return fmt.Sprintf("Create marketing campaign for %s targeting %s", product, audience)
}

func pitchPrompt(product, audience string) string {
	return fmt.Sprintf("Create sales pitch for %s targeting %s", product, audience)
}

func insightsPrompt(product, audience string) string {
	return fmt.Sprintf(`
Return structured JSON market insights.

Product: %s
Audience: %s

Return ONLY valid JSON:
{
  "market_trends": [],
  "growth_opportunities": [],
  "recommended_strategy": "",
  "next_best_actions": []
}
`, product, audience)
}

func competitorPrompt(competitor, industry string) string {
	return fmt.Sprintf(`
Return a structured JSON competitor analysis.

Competitor: %s
Industry: %s

Return ONLY valid JSON:
{
  "strengths": [],
  "weaknesses": [],
  "differentiation_strategy": "",
  "positioning_angle": ""
}
`, competitor, industry)
}
