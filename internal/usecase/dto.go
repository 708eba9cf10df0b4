package usecase

type GenerationInput struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
}

type GenerationOutput struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type CompetitorInput struct {
	Competitor string `json:"competitor"`
	Industry   string `json:"industry"`
}

type SentimentInput struct {
	Text string `json:"text"`
}

type SentimentOutput struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

type LeadInput struct {
	Name       string  `json:"name"`
	Engagement float64 `json:"engagement"`
	Budget     float64 `json:"budget"`
}

type ScoredLeadOutput struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Status string  `json:"status"`
}

type SummaryOutput struct {
	TotalCampaigns  int     `json:"total_campaigns"`
	TotalLeads      int     `json:"total_leads"`
	ConversionRate  float64 `json:"conversion_rate"`
	RevenueEstimate int     `json:"revenue_estimate"`
}

type LeadDistributionOutput struct {
	Hot  int `json:"hot"`
	Warm int `json:"warm"`
	Cold int `json:"cold"`
}

type CampaignPerformancePoint struct {
	Month     string `json:"month"`
	Campaigns int    `json:"campaigns"`
	Leads     int    `json:"leads"`
}

type AdminMetricsOutput struct {
	TotalAPICalls    int `json:"total_api_calls"`
	CampaignsCreated int `json:"campaigns_created"`
	PitchesCreated   int `json:"pitches_created"`
	LeadsScored      int `json:"leads_scored"`
	ActiveUsers      int `json:"active_users"`
	EstimatedRevenue int `json:"estimated_revenue"`
}

type DailyCallsPoint struct {
	Date  string `json:"date"`
	Calls int    `json:"calls"`
}

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}
