package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/pario-ai/llmcost/pkg/models"
)

// Column names of the exported table, in order.
const (
	ColModel          = "Model"
	ColPromptSize     = "Prompt Size (k words)"
	ColMessagesPerDay = "Messages per Day"
	ColTokensPerMonth = "Tokens per Month"
	ColCost           = "Cost per Month ($)"
)

// Header is the fixed header row of every export.
var Header = []string{ColModel, ColPromptSize, ColMessagesPerDay, ColTokensPerMonth, ColCost}

// WriteCSV writes the header once followed by rows in the given order.
func WriteCSV(w io.Writer, rows []models.ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Model,
			strconv.Itoa(r.PromptSize),
			strconv.Itoa(r.MessagesPerDay),
			strconv.Itoa(r.TokensPerMonth),
			strconv.FormatFloat(r.Cost, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportRows writes rows as CSV to path, replacing any existing file.
func ExportRows(path string, rows []models.ReportRow) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export: %w", cerr)
		}
	}()

	return WriteCSV(f, rows)
}

// ReadCSV parses an export produced by WriteCSV.
func ReadCSV(r io.Reader) ([]models.ReportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("unexpected header %q", header)
	}

	var rows []models.ReportRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
}

func parseRecord(rec []string) (models.ReportRow, error) {
	var (
		row models.ReportRow
		err error
	)
	row.Model = rec[0]
	if row.PromptSize, err = strconv.Atoi(rec[1]); err != nil {
		return row, fmt.Errorf("prompt size: %w", err)
	}
	if row.MessagesPerDay, err = strconv.Atoi(rec[2]); err != nil {
		return row, fmt.Errorf("messages per day: %w", err)
	}
	if row.TokensPerMonth, err = strconv.Atoi(rec[3]); err != nil {
		return row, fmt.Errorf("tokens per month: %w", err)
	}
	if row.Cost, err = strconv.ParseFloat(rec[4], 64); err != nil {
		return row, fmt.Errorf("cost: %w", err)
	}
	return row, nil
}
