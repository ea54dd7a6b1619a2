package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"survey_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		5000:    "5000.0",
		120.5:   "120.5",
		0:       "0.0",
		7200.25: "7200.25",
		0.1:     "0.1",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatFloat(in))
	}
}

func TestWriteCSV_ExampleRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	records := []domain.SurveyRecord{
		{Age: 30, Gender: "F", TotalIncome: 5000.00, Expenses: map[string]float64{domain.Utilities: 120.5}},
	}

	require.NoError(t, WriteCSV(path, records))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "age;gender;total_income;utilities;entertainment;school_fees;shopping;healthcare", lines[0])
	assert.Equal(t, "30;F;5000.0;120.5;0.0;0.0;0.0;0.0", lines[1])
}

func TestWriteCSV_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than the new file\n"), 0o644))

	require.NoError(t, WriteCSV(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(Header, ";")+"\n", string(raw))
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	records := []domain.SurveyRecord{
		{Age: 30, Gender: "F", TotalIncome: 5000, Expenses: map[string]float64{domain.Utilities: 120.5}},
		{Age: 45, Gender: "M", TotalIncome: 7200.25, Expenses: map[string]float64{domain.Shopping: 99.99, domain.Healthcare: 10}},
		{Age: 22, Gender: "non;binary", TotalIncome: 0},
		{Age: 61, Gender: "", TotalIncome: 1234.56, Expenses: map[string]float64{}},
	}

	require.NoError(t, WriteCSV(path, records))
	rows, err := ReadCSV(path)
	require.NoError(t, err)

	require.Len(t, rows, len(records))
	for i, rec := range records {
		assert.Equal(t, RowFromRecord(rec), rows[i], "row %d", i)
		for _, c := range domain.Categories {
			assert.Equal(t, rec.Expense(c), rows[i].Expense(c))
		}
	}
}

func TestReadCSV_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadCSV(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte(strings.Join(Header, ";")+"\nx;F;1.0;0;0;0;0;0\n"), 0o644))
	_, err = ReadCSV(bad)
	assert.ErrorContains(t, err, "invalid age")

	short := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(short, []byte("age;gender\n"), 0o644))
	_, err = ReadCSV(short)
	assert.Error(t, err)
}

func TestRowExpenseUnknownCategory(t *testing.T) {
	row := RowFromRecord(domain.SurveyRecord{Expenses: map[string]float64{domain.Utilities: 5}})
	assert.Equal(t, 5.0, row.Expense(domain.Utilities))
	assert.Equal(t, 0.0, row.Expense("rent"))
}
