package models

// Assumptions holds the usage parameters every estimate is derived from.
type Assumptions struct {
	// TokensPerKWords converts a prompt size in thousands of words to thousands of tokens.
	TokensPerKWords   float64 `json:"tokens_per_k_words" yaml:"tokens_per_k_words"`
	TokensPerMessage  int     `json:"tokens_per_message" yaml:"tokens_per_message"`
	HoursPerDay       int     `json:"hours_per_day" yaml:"hours_per_day"`
	DaysPerMonth      int     `json:"days_per_month" yaml:"days_per_month"`
	LowerBound        int     `json:"lower_bound" yaml:"lower_bound"`
	UpperBound        int     `json:"upper_bound" yaml:"upper_bound"`
	MessagesPerDay    int     `json:"messages_per_day" yaml:"messages_per_day"`
	MinMessagesPerDay int     `json:"min_messages_per_day" yaml:"min_messages_per_day"`
	MaxMessagesPerDay int     `json:"max_messages_per_day" yaml:"max_messages_per_day"`
}

// MonthlyMessages is the volume used by the console summary: one message
// per hourly slot, every day of the month.
func (a Assumptions) MonthlyMessages(messagesPerDay int) int {
	return messagesPerDay * a.HoursPerDay * a.DaysPerMonth
}

// TokensPerMonth is the volume used by the report table.
func (a Assumptions) TokensPerMonth(messagesPerDay int) int {
	return messagesPerDay * a.TokensPerMessage
}
