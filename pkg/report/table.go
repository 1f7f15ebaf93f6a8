package report

import (
	"fmt"
	"slices"

	"github.com/pario-ai/llmcost/pkg/models"
)

// Table is an addressable in-memory view of report rows with the export's columns.
type Table struct {
	rows []models.ReportRow
}

// ToTable materializes rows as a Table. The rows are copied.
func ToTable(rows []models.ReportRow) *Table {
	return &Table{rows: slices.Clone(rows)}
}

// Columns returns the column names in export order.
func (t *Table) Columns() []string {
	return slices.Clone(Header)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns row i. It panics if i is out of range, like a slice index.
func (t *Table) Row(i int) models.ReportRow {
	return t.rows[i]
}

// Cell returns the value at row i under column.
func (t *Table) Cell(i int, column string) (any, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, fmt.Errorf("row %d out of range [0,%d)", i, len(t.rows))
	}
	return cell(t.rows[i], column)
}

// Column returns every value under column, in row order.
func (t *Table) Column(column string) ([]any, error) {
	out := make([]any, 0, len(t.rows))
	for _, r := range t.rows {
		v, err := cell(r, column)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Filter returns the rows for one model, keeping their order.
func (t *Table) Filter(model string) *Table {
	var rows []models.ReportRow
	for _, r := range t.rows {
		if r.Model == model {
			rows = append(rows, r)
		}
	}
	return &Table{rows: rows}
}

func cell(r models.ReportRow, column string) (any, error) {
	switch column {
	case ColModel:
		return r.Model, nil
	case ColPromptSize:
		return r.PromptSize, nil
	case ColMessagesPerDay:
		return r.MessagesPerDay, nil
	case ColTokensPerMonth:
		return r.TokensPerMonth, nil
	case ColCost:
		return r.Cost, nil
	}
	return nil, fmt.Errorf("unknown column %q", column)
}
