package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pario-ai/llmcost/pkg/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for inconsistent settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all llmcost configuration.
type Config struct {
	Assumptions models.Assumptions `yaml:"assumptions"`
	Primary     models.Vendor      `yaml:"primary"`
	Alternate   models.Vendor      `yaml:"alternate"`
	Tasks       []models.TaskRate  `yaml:"tasks"`
	Report      ReportConfig       `yaml:"report"`
}

// ReportConfig narrows which tiers the reports enumerate.
// Empty lists mean every tier of the vendor, in catalog order.
type ReportConfig struct {
	PrimaryTiers   []string `yaml:"primary_tiers"`
	AlternateTiers []string `yaml:"alternate_tiers"`
}

// DefaultAssumptions returns the stock usage assumptions.
func DefaultAssumptions() models.Assumptions {
	return models.Assumptions{
		TokensPerKWords:   1000.0 / 750.0, // ~750 words per 1K tokens
		TokensPerMessage:  1000,
		HoursPerDay:       24,
		DaysPerMonth:      30,
		LowerBound:        1,
		UpperBound:        10,
		MessagesPerDay:    25,
		MinMessagesPerDay: 1,
		MaxMessagesPerDay: 25,
	}
}

// DefaultPrimary returns the built-in OpenAI catalog.
func DefaultPrimary() models.Vendor {
	return models.Vendor{
		Name: "openai",
		Tiers: []models.Tier{
			{ID: "gpt4_8k", Kind: models.KindDualRate, PromptRate: 0.03, CompletionRate: 0.06, CompletionMultiplier: 1},
			{ID: "gpt4_32k", Kind: models.KindDualRate, PromptRate: 0.06, CompletionRate: 0.12, CompletionMultiplier: 4},
			{ID: "chat_gpt", Kind: models.KindSingleRate, PromptRate: 0.002},
			{ID: "ada", Kind: models.KindFlatUsage, UsageRate: 0.0016, TrainingRate: 0.0004},
			{ID: "babbage", Kind: models.KindFlatUsage, UsageRate: 0.0024, TrainingRate: 0.0006},
			{ID: "curie", Kind: models.KindFlatUsage, UsageRate: 0.0120, TrainingRate: 0.0030},
			{ID: "davinci", Kind: models.KindFlatUsage, UsageRate: 0.1200, TrainingRate: 0.0300},
			{ID: "embedding_ada", Kind: models.KindFlatUsage, UsageRate: 0.0004},
			{ID: "embedding_curie", Kind: models.KindFlatUsage, UsageRate: 0.0006},
			{ID: "image_1024", Kind: models.KindPerImage, UnitRate: 0.020},
			{ID: "image_512", Kind: models.KindPerImage, UnitRate: 0.018},
			{ID: "image_256", Kind: models.KindPerImage, UnitRate: 0.016},
			{ID: "whisper", Kind: models.KindPerMinute, UnitRate: 0.006},
		},
	}
}

// DefaultAlternate returns the built-in AI21 catalog.
func DefaultAlternate() models.Vendor {
	return models.Vendor{
		Name: "ai21",
		Tiers: []models.Tier{
			{ID: "jumbo", Kind: models.KindSingleRate, PromptRate: 0.015},
			{ID: "grande", Kind: models.KindSingleRate, PromptRate: 0.01},
			{ID: "large", Kind: models.KindSingleRate, PromptRate: 0.003},
		},
	}
}

// DefaultTasks returns the AI21 task-specific API rates, per 1000 requests.
func DefaultTasks() []models.TaskRate {
	return []models.TaskRate{
		{Name: "paraphrase", Rate: 1},
		{Name: "summarize", Rate: 5},
		{Name: "grammar_correction", Rate: 0.5},
		{Name: "text_improvement", Rate: 0.5},
		{Name: "text_segmentation", Rate: 1},
		{Name: "contextual_answers", Rate: 5},
	}
}

// Default returns a Config with the built-in catalogs and assumptions.
func Default() *Config {
	return &Config{
		Assumptions: DefaultAssumptions(),
		Primary:     DefaultPrimary(),
		Alternate:   DefaultAlternate(),
		Tasks:       DefaultTasks(),
	}
}

// Load reads a YAML config file, expands environment variables and
// overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks assumptions and catalogs for values the formulas cannot use.
func (c *Config) Validate() error {
	a := c.Assumptions
	if a.TokensPerKWords <= 0 {
		return fmt.Errorf("%w: tokens_per_k_words must be positive", ErrInvalidConfig)
	}
	if a.TokensPerMessage < 0 || a.HoursPerDay < 0 || a.DaysPerMonth < 0 {
		return fmt.Errorf("%w: volume assumptions must not be negative", ErrInvalidConfig)
	}
	if a.LowerBound < 0 || a.UpperBound < a.LowerBound {
		return fmt.Errorf("%w: prompt size bounds %d..%d", ErrInvalidConfig, a.LowerBound, a.UpperBound)
	}
	if a.MessagesPerDay < 0 {
		return fmt.Errorf("%w: messages_per_day must not be negative", ErrInvalidConfig)
	}
	if a.MinMessagesPerDay < 0 || a.MaxMessagesPerDay < a.MinMessagesPerDay {
		return fmt.Errorf("%w: messages per day range %d..%d", ErrInvalidConfig, a.MinMessagesPerDay, a.MaxMessagesPerDay)
	}

	for _, v := range []models.Vendor{c.Primary, c.Alternate} {
		if err := validateVendor(v); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(c.Tasks))
	for _, t := range c.Tasks {
		if t.Name == "" || seen[t.Name] {
			return fmt.Errorf("%w: task %q is empty or duplicated", ErrInvalidConfig, t.Name)
		}
		if t.Rate < 0 {
			return fmt.Errorf("%w: task %q has a negative rate", ErrInvalidConfig, t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

func validateVendor(v models.Vendor) error {
	if v.Name == "" {
		return fmt.Errorf("%w: vendor name is required", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(v.Tiers))
	for _, t := range v.Tiers {
		if t.ID == "" {
			return fmt.Errorf("%w: %s: tier id is required", ErrInvalidConfig, v.Name)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: %s: duplicate tier %q", ErrInvalidConfig, v.Name, t.ID)
		}
		seen[t.ID] = true
		if !t.Kind.Valid() {
			return fmt.Errorf("%w: %s: tier %q has unknown kind %q", ErrInvalidConfig, v.Name, t.ID, t.Kind)
		}
		if t.PromptRate < 0 || t.CompletionRate < 0 || t.CompletionMultiplier < 0 ||
			t.UsageRate < 0 || t.TrainingRate < 0 || t.UnitRate < 0 {
			return fmt.Errorf("%w: %s: tier %q has a negative rate", ErrInvalidConfig, v.Name, t.ID)
		}
	}
	return nil
}
