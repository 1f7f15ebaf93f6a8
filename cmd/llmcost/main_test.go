package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pario-ai/llmcost/pkg/pricing"
	"github.com/pario-ai/llmcost/pkg/report"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSummaryCmd(t *testing.T) {
	out, _, err := run(t, "summary", "--lower", "1", "--upper", "5", "--messages-per-day", "25")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Model: gpt4_8k", "Model: whisper", "Model: large", "Upper bound cost: $"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestSummaryCmdRejectsNegative(t *testing.T) {
	_, _, err := run(t, "summary", "--messages-per-day=-1")
	if !errors.Is(err, report.ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestSummaryCmdConfigTiers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "llmcost.yaml")
	content := `
report:
  primary_tiers: [chat_gpt, gpt9]
  alternate_tiers: [grande]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, stderr, err := run(t, "--config", path, "summary")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "Model: ") != 2 {
		t.Errorf("expected 2 models, got:\n%s", out)
	}
	if !strings.Contains(stderr, "gpt9") {
		t.Errorf("expected warning about gpt9, got %q", stderr)
	}
}

func TestExportCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.csv")
	out, _, err := run(t, "export", "--output", path, "--lower", "1", "--upper", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Exported 800 rows") {
		t.Errorf("unexpected output %q", out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// 16 models x 2 prompt sizes x 25 message rates, plus the header.
	if len(records) != 801 {
		t.Errorf("expected 801 records, got %d", len(records))
	}
	if records[0][0] != "Model" || records[800][0] != "large" {
		t.Errorf("unexpected first/last records %q / %q", records[0], records[800])
	}
}

func TestRankCmd(t *testing.T) {
	out, _, err := run(t, "rank", "--prompt-size", "2", "--messages-per-day", "10", "--limit", "3")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "1") {
		t.Errorf("expected rank 1 first, got %q", lines[1])
	}
}

func TestRankCmdMessageRateOutsideTable(t *testing.T) {
	for _, rate := range []string{"0", "30"} {
		out, _, err := run(t, "rank", "--prompt-size", "2", "--messages-per-day", rate, "--limit", "3")
		if !errors.Is(err, report.ErrInvalidBounds) {
			t.Errorf("messages per day %s: expected ErrInvalidBounds, got %v", rate, err)
		}
		if out != "" {
			t.Errorf("messages per day %s: expected no output, got %q", rate, out)
		}
	}
}

func TestRankBudgetCmd(t *testing.T) {
	out, _, err := run(t, "rank", "--prompt-size", "10", "--messages-per-day", "25", "--budget", "0.000001")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No models fit") {
		t.Errorf("expected empty ranking, got:\n%s", out)
	}
}

func TestRankTotalsCmd(t *testing.T) {
	out, _, err := run(t, "rank", "--totals")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "gpt4_32k") || !strings.Contains(out, "jumbo") {
		t.Errorf("expected every model in totals, got:\n%s", out)
	}
}

func TestTokensCmd(t *testing.T) {
	out, _, err := run(t, "tokens", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Tokens (exact):   1") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestTasksCmd(t *testing.T) {
	out, _, err := run(t, "tasks", "--requests", "paraphrase=1000,summarize=500")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Total cost: $3.50") {
		t.Errorf("unexpected output %q", out)
	}

	_, _, err = run(t, "tasks", "--requests", "translate=10")
	if !errors.Is(err, pricing.ErrUnknownTask) {
		t.Errorf("expected ErrUnknownTask, got %v", err)
	}
}

func TestTiersCmd(t *testing.T) {
	out, _, err := run(t, "tiers")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"openai", "ai21", "whisper", "$0.006/minute", "training $0.0004/1K"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestBadLogLevel(t *testing.T) {
	if _, _, err := run(t, "--log-level", "loud", "tiers"); err == nil {
		t.Error("expected error for bad log level")
	}
}
