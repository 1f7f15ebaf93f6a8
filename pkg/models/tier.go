package models

// FormulaKind selects the cost formula a tier is priced with.
type FormulaKind string

const (
	// KindDualRate prices prompt and completion tokens at separate per-1K rates.
	KindDualRate FormulaKind = "dual_rate"
	// KindSingleRate prices prompt tokens at one per-1K rate.
	KindSingleRate FormulaKind = "single_rate"
	// KindFlatUsage prices the monthly volume at a per-1K usage rate; prompt size is ignored.
	KindFlatUsage FormulaKind = "flat_usage"
	// KindPerImage prices each unit of volume as one generated image.
	KindPerImage FormulaKind = "per_image"
	// KindPerMinute prices volume as transcription minutes at a per-minute rate.
	KindPerMinute FormulaKind = "per_minute"
)

// Valid reports whether k is a known formula kind.
func (k FormulaKind) Valid() bool {
	switch k {
	case KindDualRate, KindSingleRate, KindFlatUsage, KindPerImage, KindPerMinute:
		return true
	}
	return false
}

// Tier is a billable model or service with its rate constants.
// Rates are dollars per 1K tokens unless the kind says otherwise.
type Tier struct {
	ID                   string      `json:"id" yaml:"id"`
	Kind                 FormulaKind `json:"kind" yaml:"kind"`
	PromptRate           float64     `json:"prompt_rate,omitempty" yaml:"prompt_rate"`
	CompletionRate       float64     `json:"completion_rate,omitempty" yaml:"completion_rate"`
	CompletionMultiplier float64     `json:"completion_multiplier,omitempty" yaml:"completion_multiplier"`
	UsageRate            float64     `json:"usage_rate,omitempty" yaml:"usage_rate"`
	// TrainingRate is the fine-tuning price. It does not enter any formula yet.
	TrainingRate float64 `json:"training_rate,omitempty" yaml:"training_rate"`
	// UnitRate is the per-image or per-minute price.
	UnitRate float64 `json:"unit_rate,omitempty" yaml:"unit_rate"`
}

// Vendor is a named, ordered catalog of tiers.
type Vendor struct {
	Name  string `json:"name" yaml:"name"`
	Tiers []Tier `json:"tiers" yaml:"tiers"`
}

// IDs returns the tier identifiers in catalog order.
func (v Vendor) IDs() []string {
	ids := make([]string, 0, len(v.Tiers))
	for _, t := range v.Tiers {
		ids = append(ids, t.ID)
	}
	return ids
}

// TaskRate is a flat price per 1000 requests for a task-specific API.
type TaskRate struct {
	Name string  `json:"name" yaml:"name"`
	Rate float64 `json:"rate_per_1k" yaml:"rate_per_1k"`
}
