// Package report enumerates usage combinations through the pricing engine
// and renders the results as a console summary or a table.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/pario-ai/llmcost/pkg/models"
	"github.com/pario-ai/llmcost/pkg/pricing"
)

// ErrInvalidBounds is returned for negative or inverted prompt-size bounds
// and negative message counts.
var ErrInvalidBounds = errors.New("invalid bounds")

// Generator builds reports from a pricing engine and usage assumptions.
type Generator struct {
	engine      *pricing.Engine
	assumptions models.Assumptions
	primary     []string
	alternate   []string
	style       *Style
}

// Style holds the console styles Summarize renders with.
type Style struct {
	Heading lipgloss.Style
	Model   lipgloss.Style
}

// DefaultStyle returns bold magenta headings and bold model lines. Colors are
// dropped when r does not write to a terminal.
func DefaultStyle(r *lipgloss.Renderer) Style {
	return Style{
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Model:   r.NewStyle().Bold(true),
	}
}

// Option configures a Generator.
type Option func(*Generator)

// WithPrimaryTiers sets which primary tiers are reported, in order.
func WithPrimaryTiers(ids []string) Option {
	return func(g *Generator) { g.primary = ids }
}

// WithAlternateTiers sets which alternate tiers are reported, in order.
func WithAlternateTiers(ids []string) Option {
	return func(g *Generator) { g.alternate = ids }
}

// WithStyle overrides the styles Summarize uses.
func WithStyle(s Style) Option {
	return func(g *Generator) { g.style = &s }
}

// New creates a Generator. Without tier options nothing is enumerated, so
// callers normally pass the catalog order from their config.
func New(engine *pricing.Engine, a models.Assumptions, opts ...Option) *Generator {
	g := &Generator{engine: engine, assumptions: a}
	for _, o := range opts {
		o(g)
	}
	return g
}

type pricedTier struct {
	id    string
	price func(string, float64, float64) (float64, error)
}

func (g *Generator) tiers() []pricedTier {
	out := make([]pricedTier, 0, len(g.primary)+len(g.alternate))
	for _, id := range g.primary {
		out = append(out, pricedTier{id: id, price: g.engine.PricePrimary})
	}
	for _, id := range g.alternate {
		out = append(out, pricedTier{id: id, price: g.engine.PriceAlternate})
	}
	return out
}

// ValidateBounds rejects negative values and lower > upper.
func ValidateBounds(lower, upper, messagesPerDay int) error {
	if lower < 0 || upper < 0 || messagesPerDay < 0 {
		return fmt.Errorf("%w: values must not be negative (lower %d, upper %d, messages per day %d)",
			ErrInvalidBounds, lower, upper, messagesPerDay)
	}
	if lower > upper {
		return fmt.Errorf("%w: lower bound %d is above upper bound %d", ErrInvalidBounds, lower, upper)
	}
	return nil
}

// Summarize writes the lower- and upper-bound monthly cost of every tier.
// Tiers without an estimate are left out.
func (g *Generator) Summarize(w io.Writer, lower, upper, messagesPerDay int) error {
	if err := ValidateBounds(lower, upper, messagesPerDay); err != nil {
		return err
	}

	style := DefaultStyle(lipgloss.NewRenderer(w))
	if g.style != nil {
		style = *g.style
	}

	volume := float64(g.assumptions.MonthlyMessages(messagesPerDay))

	if _, err := fmt.Fprintln(w, style.Heading.Render("Calculating costs for different models...")); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	for _, t := range g.tiers() {
		lo, err := t.price(t.id, float64(lower), volume)
		if errors.Is(err, pricing.ErrUnknownTier) {
			continue
		}
		if err != nil {
			return fmt.Errorf("price %s: %w", t.id, err)
		}
		hi, err := t.price(t.id, float64(upper), volume)
		if err != nil {
			return fmt.Errorf("price %s: %w", t.id, err)
		}

		_, err = fmt.Fprintf(w, "%s\nLower bound cost: $%.2f\nUpper bound cost: $%.2f\n\n",
			style.Model.Render("Model: "+t.id), lo, hi)
		if err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}

// BuildRows prices every (tier, prompt size, messages per day) combination.
// Rows are ordered by tier, then prompt size, then messages per day.
func (g *Generator) BuildRows(lower, upper int) ([]models.ReportRow, error) {
	if err := ValidateBounds(lower, upper, g.assumptions.MinMessagesPerDay); err != nil {
		return nil, err
	}
	minMsgs, maxMsgs := g.assumptions.MinMessagesPerDay, g.assumptions.MaxMessagesPerDay
	if maxMsgs < minMsgs {
		return nil, fmt.Errorf("%w: messages per day range %d..%d is inverted", ErrInvalidBounds, minMsgs, maxMsgs)
	}

	tiers := g.tiers()
	perTier := (upper - lower + 1) * (maxMsgs - minMsgs + 1)
	rows := make([]models.ReportRow, 0, len(tiers)*perTier)

tierLoop:
	for _, t := range tiers {
		for size := lower; size <= upper; size++ {
			for msgs := minMsgs; msgs <= maxMsgs; msgs++ {
				tokens := g.assumptions.TokensPerMonth(msgs)
				cost, err := t.price(t.id, float64(size), float64(tokens))
				if errors.Is(err, pricing.ErrUnknownTier) {
					continue tierLoop
				}
				if err != nil {
					return nil, fmt.Errorf("price %s: %w", t.id, err)
				}
				rows = append(rows, models.ReportRow{
					Model:          t.id,
					PromptSize:     size,
					MessagesPerDay: msgs,
					TokensPerMonth: tokens,
					Cost:           cost,
				})
			}
		}
	}
	return rows, nil
}
