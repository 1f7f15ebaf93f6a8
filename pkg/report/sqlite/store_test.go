package sqlite

import (
	"context"
	"math"
	"testing"

	"github.com/pario-ai/llmcost/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleRows() []models.ReportRow {
	return []models.ReportRow{
		{Model: "gpt4_8k", PromptSize: 1, MessagesPerDay: 1, TokensPerMonth: 1000, Cost: 0.12},
		{Model: "gpt4_8k", PromptSize: 1, MessagesPerDay: 2, TokensPerMonth: 2000, Cost: 0.24},
		{Model: "chat_gpt", PromptSize: 1, MessagesPerDay: 1, TokensPerMonth: 1000, Cost: 0.0027},
		{Model: "chat_gpt", PromptSize: 1, MessagesPerDay: 2, TokensPerMonth: 2000, Cost: 0.0053},
		{Model: "ada", PromptSize: 1, MessagesPerDay: 1, TokensPerMonth: 1000, Cost: 0.0016},
		{Model: "babbage", PromptSize: 1, MessagesPerDay: 1, TokensPerMonth: 1000, Cost: 0.0016},
	}
}

func TestLoadAndCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Load(ctx, sampleRows()); err != nil {
		t.Fatal(err)
	}
	n, err := s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Errorf("expected 6 rows, got %d", n)
	}
}

func TestCheapest(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if err := s.Load(ctx, sampleRows()); err != nil {
		t.Fatal(err)
	}

	rows, err := s.Cheapest(ctx, Query{PromptSize: 1, MessagesPerDay: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	// ada and babbage tie; load order decides.
	want := []string{"ada", "babbage", "chat_gpt", "gpt4_8k"}
	for i, r := range rows {
		if r.Model != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], r.Model)
		}
	}

	rows, err = s.Cheapest(ctx, Query{PromptSize: 1, MessagesPerDay: 1, Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("expected limit of 2 rows, got %d", len(rows))
	}

	rows, err = s.Cheapest(ctx, Query{PromptSize: 1, MessagesPerDay: 1, MaxCost: 0.01})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("expected 3 rows within budget, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Cost > 0.01 {
			t.Errorf("%s costs %v, over budget", r.Model, r.Cost)
		}
	}
}

func TestModelTotals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if err := s.Load(ctx, sampleRows()); err != nil {
		t.Fatal(err)
	}

	totals, err := s.ModelTotals(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(totals) != 4 {
		t.Fatalf("expected 4 models, got %d", len(totals))
	}
	first := totals[0]
	if first.Model != "gpt4_8k" || first.Rows != 2 {
		t.Errorf("unexpected first total %+v", first)
	}
	if math.Abs(first.Total-0.36) > 1e-9 || first.MinCost != 0.12 || first.MaxCost != 0.24 {
		t.Errorf("unexpected aggregates %+v", first)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	ctx := context.Background()
	a := newTestStore(t)
	b := newTestStore(t)
	if err := a.Load(ctx, sampleRows()); err != nil {
		t.Fatal(err)
	}
	n, err := b.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected empty second store, got %d rows", n)
	}
}
