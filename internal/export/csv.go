// Package export serializes expense sets to delimited text files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"fintrack/internal/core"
)

// Header is the column layout of an exported expense file.
var Header = []string{"id", "date", "amount", "description", "category", "payment_method", "created_at"}

// WriteCSV writes the expenses as CSV with a header row, one record per
// line. Amounts are decimal strings, dates YYYY-MM-DD, timestamps RFC3339.
func WriteCSV(w io.Writer, expenses []core.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range expenses {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.String(),
			e.Amount.String(),
			e.Description,
			string(e.Category),
			string(e.PaymentMethod),
			e.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadCSV parses a file previously produced by WriteCSV.
func ReadCSV(r io.Reader) ([]core.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, col := range Header {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected csv header column %q, want %q", header[i], col)
		}
	}

	var expenses []core.Expense
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		e, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func parseRecord(record []string) (core.Expense, error) {
	id, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse id %q: %w", record[0], err)
	}
	date, err := core.ParseDate(record[1])
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse date %q: %w", record[1], err)
	}
	amount, err := core.ParseAmount(record[2])
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse amount %q: %w", record[2], err)
	}
	createdAt, err := time.Parse(time.RFC3339, record[6])
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse created_at %q: %w", record[6], err)
	}
	return core.Expense{
		ID:            id,
		Date:          date,
		Amount:        amount,
		Description:   record[3],
		Category:      core.Category(record[4]),
		PaymentMethod: core.PaymentMethod(record[5]),
		CreatedAt:     createdAt,
	}, nil
}
