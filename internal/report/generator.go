package report

import (
	"context"                        // Context for store operations
	"fmt"                            // Error wrapping and table formatting
	"os"                             // Output directories
	"path/filepath"                  // Output directories
	"strings"                        // Table buffer
	"survey_system/internal/db"      // Record store
	"survey_system/internal/domain"  // Importing domain models
	"survey_system/internal/metrics" // Report timing
	"text/tabwriter"                 // Aligned console table
	"time"                           // Timing

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Paths locates the generated report files
type Paths struct {
	CSV         string // Semicolon-delimited snapshot of the collection
	IncomeChart string // Top incomes bar chart
	GenderChart string // Spending by gender grouped bar chart
}

// Report is one fully recomputed view over the collection
type Report struct {
	Records      []domain.SurveyRecord // Every stored record, in store order
	Rows         []Row                 // Rows loaded back from the CSV
	TopIncomes   []Row                 // Bars of the income chart
	GenderTotals []GenderTotal         // Series of the gender chart
}

// Generator rebuilds the CSV and both charts from the store
type Generator struct {
	store db.RecordStore // Source of records
	paths Paths          // Output locations
}

// NewGenerator creates a Generator writing to paths
func NewGenerator(store db.RecordStore, paths Paths) *Generator {
	return &Generator{store: store, paths: paths}
}

// Paths returns where generated files are written
func (g *Generator) Paths() Paths {
	return g.paths
}

// Generate reads every record and overwrites the CSV and chart files
//
// Concurrent calls write to the same files without coordination.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	start := time.Now()
	defer func() { metrics.ObserveReport(time.Since(start)) }()

	records, err := g.store.FindAllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(g.paths.CSV), 0o755); err != nil {
		return nil, fmt.Errorf("create csv directory: %w", err)
	}
	if err := WriteCSV(g.paths.CSV, records); err != nil {
		return nil, err
	}
	rows, err := ReadCSV(g.paths.CSV)
	if err != nil {
		return nil, err
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("Results table:\n" + FormatTable(rows))
	}

	top := TopIncomes(rows, TopIncomeLimit)
	if err := RenderIncomeChart(g.paths.IncomeChart, top); err != nil {
		return nil, err
	}
	totals := GenderTotals(rows)
	if err := RenderGenderChart(g.paths.GenderChart, totals); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"records": len(records),      // Records in the store
		"genders": len(totals),       // Series on the gender chart
		"elapsed": time.Since(start), // Rebuild duration
	}).Info("Report generated")
	return &Report{Records: records, Rows: rows, TopIncomes: top, GenderTotals: totals}, nil
}

// FormatTable renders rows as an aligned text table with every row and column
func FormatTable(rows []Row) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "\t", strings.Join(Header, "\t"), "\t\n")
	for i, row := range rows {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s", i, row.Age, row.Gender, FormatFloat(row.TotalIncome))
		for _, v := range row.Expenses {
			fmt.Fprintf(w, "\t%s", FormatFloat(v))
		}
		fmt.Fprint(w, "\t\n")
	}
	_ = w.Flush()
	return b.String()
}
