package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/pario-ai/llmcost/pkg/models"
)

// Store holds report rows in an in-memory SQLite database for ad-hoc ranking.
// Nothing is written to disk.
type Store struct {
	db *sql.DB
}

const createTable = `
CREATE TABLE IF NOT EXISTS report_rows (
	seq INTEGER PRIMARY KEY,
	model TEXT NOT NULL,
	prompt_size INTEGER NOT NULL,
	messages_per_day INTEGER NOT NULL,
	tokens_per_month INTEGER NOT NULL,
	cost REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_rows_cell ON report_rows(prompt_size, messages_per_day);
`

// Open creates an empty in-memory store.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open report db: %w", err)
	}
	// Every new connection to :memory: is a fresh database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate report db: %w", err)
	}
	return &Store{db: db}, nil
}

// Load appends rows, keeping their order in seq.
func (s *Store) Load(ctx context.Context, rows []models.ReportRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO report_rows (model, prompt_size, messages_per_day, tokens_per_month, cost)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare load: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.Model, r.PromptSize, r.MessagesPerDay, r.TokensPerMonth, r.Cost); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}
	return nil
}

// Count returns the number of loaded rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM report_rows`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return n, nil
}

// Query selects one (prompt size, messages per day) cell of the table.
type Query struct {
	PromptSize     int
	MessagesPerDay int
	// MaxCost drops rows costing more per month. Zero means no ceiling.
	MaxCost float64
	// Limit caps the number of rows. Zero means all.
	Limit int
}

// Cheapest returns the rows matching q, cheapest first. Ties keep load order.
func (s *Store) Cheapest(ctx context.Context, q Query) ([]models.ReportRow, error) {
	query := `SELECT model, prompt_size, messages_per_day, tokens_per_month, cost
		 FROM report_rows WHERE prompt_size = ? AND messages_per_day = ?`
	args := []any{q.PromptSize, q.MessagesPerDay}
	if q.MaxCost > 0 {
		query += ` AND cost <= ?`
		args = append(args, q.MaxCost)
	}
	query += ` ORDER BY cost ASC, seq ASC`
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("cheapest: %w", err)
	}
	defer rows.Close()

	var out []models.ReportRow
	for rows.Next() {
		var r models.ReportRow
		if err := rows.Scan(&r.Model, &r.PromptSize, &r.MessagesPerDay, &r.TokensPerMonth, &r.Cost); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ModelTotals aggregates cost per model in first-seen order.
func (s *Store) ModelTotals(ctx context.Context) ([]models.ModelTotal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT model, COUNT(*), MIN(cost), MAX(cost), SUM(cost)
		 FROM report_rows GROUP BY model ORDER BY MIN(seq)`)
	if err != nil {
		return nil, fmt.Errorf("model totals: %w", err)
	}
	defer rows.Close()

	var totals []models.ModelTotal
	for rows.Next() {
		var m models.ModelTotal
		if err := rows.Scan(&m.Model, &m.Rows, &m.MinCost, &m.MaxCost, &m.Total); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		totals = append(totals, m)
	}
	return totals, rows.Err()
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}
