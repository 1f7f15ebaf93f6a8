package models

// ReportRow is one computed estimate for a (tier, prompt size, messages per day) cell.
type ReportRow struct {
	Model          string  `json:"model"`
	PromptSize     int     `json:"prompt_size_k_words"`
	MessagesPerDay int     `json:"messages_per_day"`
	TokensPerMonth int     `json:"tokens_per_month"`
	Cost           float64 `json:"cost_per_month"`
}

// ModelTotal aggregates a model's rows.
type ModelTotal struct {
	Model   string  `json:"model"`
	Rows    int     `json:"rows"`
	MinCost float64 `json:"min_cost"`
	MaxCost float64 `json:"max_cost"`
	Total   float64 `json:"total"`
}
