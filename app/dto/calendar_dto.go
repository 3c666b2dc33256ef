package dto

// MonthlyOpportunitiesRequest represents the query for a month's timeline
type MonthlyOpportunitiesRequest struct {
	MerchantID uint `json:"-"`
	Year       int  `json:"year" validate:"required,gte=2000,lte=2100"`
	Month      int  `json:"month" validate:"required,gte=1,lte=12"`
}

// OpportunityDTO is one marketing opportunity instance for a single day
type OpportunityDTO struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	TargetCustomer  string  `json:"target_customer"`
	SuggestedAction string  `json:"suggested_action"`
	ExpectedEffect  string  `json:"expected_effect"`
	Category        string  `json:"category"`
	Confidence      float64 `json:"confidence"`
	Priority        string  `json:"priority"`
	DataSource      string  `json:"data_source"`
}

// DailyOpportunitiesDTO groups the opportunities of one calendar day
type DailyOpportunitiesDTO struct {
	Date            string           `json:"date"`
	HasHighPriority bool             `json:"has_high_priority"`
	TotalCount      int              `json:"total_count"`
	Opportunities   []OpportunityDTO `json:"opportunities"`
}

// MonthlyOpportunitiesResponse is the per-day timeline for one month
type MonthlyOpportunitiesResponse struct {
	Month      string                  `json:"month"`
	FromCache  bool                    `json:"from_cache"`
	ComputedAt string                  `json:"computed_at"`
	Days       []DailyOpportunitiesDTO `json:"days"`
}
