// Package pricing turns usage assumptions into monthly cost estimates.
package pricing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pario-ai/llmcost/pkg/models"
)

var (
	// ErrUnknownTier is the "no estimate" result for a tier the catalog does not price.
	ErrUnknownTier = errors.New("unknown tier")
	// ErrNegativeInput is returned when a prompt size, volume or request count is negative.
	ErrNegativeInput = errors.New("negative input")
)

// Engine prices tiers from two vendor catalogs.
type Engine struct {
	primary   catalog
	alternate catalog
	tasks     map[string]float64
	taskOrder []string

	tokensPerKWords float64
	logger          *slog.Logger
}

type catalog struct {
	vendor string
	tiers  map[string]models.Tier
}

func newCatalog(v models.Vendor) catalog {
	c := catalog{vendor: v.Name, tiers: make(map[string]models.Tier, len(v.Tiers))}
	for _, t := range v.Tiers {
		c.tiers[t.ID] = t
	}
	return c
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for unknown-tier warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithTasks sets the task-specific API rates used by BillTasks.
func WithTasks(rates []models.TaskRate) Option {
	return func(e *Engine) {
		e.tasks = make(map[string]float64, len(rates))
		e.taskOrder = e.taskOrder[:0]
		for _, r := range rates {
			e.tasks[r.Name] = r.Rate
			e.taskOrder = append(e.taskOrder, r.Name)
		}
	}
}

// New creates an Engine. The conversion factor from a models.Assumptions is
// shared by every formula that depends on prompt size.
func New(primary, alternate models.Vendor, a models.Assumptions, opts ...Option) *Engine {
	e := &Engine{
		primary:         newCatalog(primary),
		alternate:       newCatalog(alternate),
		tokensPerKWords: a.TokensPerKWords,
		logger:          slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// PricePrimary returns the monthly cost of a primary-vendor tier.
func (e *Engine) PricePrimary(tierID string, promptSizeKWords, monthlyVolume float64) (float64, error) {
	return e.price(e.primary, tierID, promptSizeKWords, monthlyVolume)
}

// PriceAlternate returns the monthly cost of an alternate-vendor tier.
func (e *Engine) PriceAlternate(tierID string, promptSizeKWords, monthlyVolume float64) (float64, error) {
	return e.price(e.alternate, tierID, promptSizeKWords, monthlyVolume)
}

func (e *Engine) price(c catalog, tierID string, promptSize, volume float64) (float64, error) {
	t, ok := c.tiers[tierID]
	if !ok {
		e.logger.Warn("invalid model, please choose a valid model", "vendor", c.vendor, "tier", tierID)
		return 0, fmt.Errorf("%s: %w %q", c.vendor, ErrUnknownTier, tierID)
	}
	return Evaluate(t, e.tokensPerKWords, promptSize, volume)
}

// Evaluate applies the tier's formula. promptSize is in thousands of words;
// volume is tokens, requests, images or the minutes proxy depending on the kind.
func Evaluate(t models.Tier, tokensPerKWords, promptSize, volume float64) (float64, error) {
	if promptSize < 0 || volume < 0 {
		return 0, fmt.Errorf("%w: prompt size %v, volume %v", ErrNegativeInput, promptSize, volume)
	}

	promptTokens := promptSize * tokensPerKWords

	switch t.Kind {
	case models.KindDualRate:
		completionTokens := promptTokens * t.CompletionMultiplier
		return volume*promptTokens*t.PromptRate/1000 +
			volume*completionTokens*t.CompletionRate/1000, nil
	case models.KindSingleRate:
		return volume * promptTokens * t.PromptRate / 1000, nil
	case models.KindFlatUsage:
		return volume * t.UsageRate / 1000, nil
	case models.KindPerImage:
		return volume * t.UnitRate, nil
	case models.KindPerMinute:
		// Volume stands in for minutes of audio.
		return volume * t.UnitRate / 60, nil
	default:
		return 0, fmt.Errorf("tier %q: %w kind %q", t.ID, ErrUnknownTier, t.Kind)
	}
}
