package pricing

import (
	"errors"
	"testing"

	"github.com/pario-ai/llmcost/pkg/config"
	"github.com/pario-ai/llmcost/pkg/models"
)

func TestBillTasks(t *testing.T) {
	e := newTestEngine(t)

	total, err := e.BillTasks(nil)
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("expected 0 for no requests, got %v", total)
	}

	single := map[string]float64{
		"paraphrase":         1,
		"summarize":          5,
		"grammar_correction": 0.5,
		"text_improvement":   0.5,
		"text_segmentation":  1,
		"contextual_answers": 5,
	}
	for task, want := range single {
		got, err := e.BillTasks(map[string]int{task: 1000})
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s: expected %v, got %v", task, want, got)
		}
	}

	total, err = e.BillTasks(map[string]int{
		"paraphrase":         1000,
		"summarize":          500,
		"grammar_correction": 2000,
		"text_improvement":   2000,
		"text_segmentation":  1000,
		"contextual_answers": 500,
	})
	if err != nil {
		t.Fatal(err)
	}
	if total != 9.0 {
		t.Errorf("expected 9.0, got %v", total)
	}
}

func TestBillTasksErrors(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.BillTasks(map[string]int{"translate": 10}); !errors.Is(err, ErrUnknownTask) {
		t.Errorf("expected ErrUnknownTask, got %v", err)
	}
	if _, err := e.BillTasks(map[string]int{"summarize": -1}); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("expected ErrNegativeInput, got %v", err)
	}
}

func TestTasksOrder(t *testing.T) {
	e := newTestEngine(t)
	got := e.Tasks()
	if len(got) != 6 || got[0] != "paraphrase" || got[5] != "contextual_answers" {
		t.Errorf("unexpected task order: %v", got)
	}
}

func TestBillTasksSumsInConfiguredOrder(t *testing.T) {
	cfg := config.Default()
	rates := []models.TaskRate{
		{Name: "a", Rate: 0.1},
		{Name: "b", Rate: 0.2},
		{Name: "c", Rate: 0.3},
		{Name: "d", Rate: 0.7},
	}
	e := New(cfg.Primary, cfg.Alternate, cfg.Assumptions, WithTasks(rates))
	requests := map[string]int{"a": 1000, "b": 1000, "c": 1000, "d": 1000}

	var want float64
	for _, r := range rates {
		want += float64(requests[r.Name]) * r.Rate / 1000
	}
	for i := 0; i < 50; i++ {
		got, err := e.BillTasks(requests)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
