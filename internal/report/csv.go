package report

import (
	"encoding/csv"                  // Semicolon-delimited reader and writer
	"fmt"                           // Error wrapping
	"os"                            // File access
	"strconv"                       // Number formatting
	"strings"                       // Float text tweaks
	"survey_system/internal/domain" // Importing domain models
)

// Delimiter separates CSV fields
const Delimiter = ';'

// Header is the fixed CSV column order
var Header = append([]string{"age", "gender", "total_income"}, domain.Categories...)

// Row is one CSV line loaded back for tabular processing
type Row struct {
	Age         int       `json:"age"`          // Respondent age
	Gender      string    `json:"gender"`       // Respondent gender
	TotalIncome float64   `json:"total_income"` // Income
	Expenses    []float64 `json:"expenses"`     // Amounts in domain.Categories order
}

// Expense returns the amount for a category, zero for unknown names
func (r Row) Expense(category string) float64 {
	for i, c := range domain.Categories {
		if c == category && i < len(r.Expenses) {
			return r.Expenses[i]
		}
	}
	return 0
}

// RowFromRecord flattens a record, absent categories become 0.0
func RowFromRecord(rec domain.SurveyRecord) Row {
	row := Row{Age: rec.Age, Gender: rec.Gender, TotalIncome: rec.TotalIncome, Expenses: make([]float64, len(domain.Categories))}
	for i, c := range domain.Categories {
		row.Expenses[i] = rec.Expense(c)
	}
	return row
}

// RowsFromRecords flattens every record
func RowsFromRecords(records []domain.SurveyRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, RowFromRecord(rec))
	}
	return rows
}

// FormatFloat writes the shortest text that reads back as v, always with a fractional part
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0" // 5000 -> 5000.0
	}
	return s
}

// WriteCSV overwrites path with one row per record
func WriteCSV(path string, records []domain.SurveyRecord) error {
	f, err := os.Create(path) // Truncates any previous report
	if err != nil {
		return fmt.Errorf("failed to create csv %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = Delimiter
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range records {
		row := RowFromRecord(rec)
		line := []string{strconv.Itoa(row.Age), row.Gender, FormatFloat(row.TotalIncome)}
		for _, v := range row.Expenses {
			line = append(line, FormatFloat(v))
		}
		if err := w.Write(line); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv %s: %w", path, err)
	}
	return f.Close()
}

// ReadCSV loads a file written by WriteCSV
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = Delimiter
	r.FieldsPerRecord = len(Header)
	lines, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv %s: %w", path, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}

	rows := make([]Row, 0, len(lines)-1)
	for n, line := range lines[1:] {
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("csv %s line %d: %w", path, n+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(line []string) (Row, error) {
	age, err := strconv.Atoi(line[0])
	if err != nil {
		return Row{}, fmt.Errorf("invalid age %q: %w", line[0], err)
	}
	income, err := strconv.ParseFloat(line[2], 64)
	if err != nil {
		return Row{}, fmt.Errorf("invalid total_income %q: %w", line[2], err)
	}
	row := Row{Age: age, Gender: line[1], TotalIncome: income, Expenses: make([]float64, len(domain.Categories))}
	for i := range domain.Categories {
		raw := line[3+i]
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Row{}, fmt.Errorf("invalid %s %q: %w", domain.Categories[i], raw, err)
		}
		row.Expenses[i] = v
	}
	return row, nil
}
