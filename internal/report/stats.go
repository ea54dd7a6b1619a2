package report

import (
	"sort"                          // Ordering rows and genders
	"survey_system/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact cent sums
)

// TopIncomeLimit is the number of bars on the income chart
const TopIncomeLimit = 10

// GenderTotal holds per-category spending summed over one gender
type GenderTotal struct {
	Gender string             `json:"gender"` // Gender value as submitted
	Totals map[string]float64 `json:"totals"` // Category -> summed amount
}

// TopIncomes picks the n highest incomes and orders them by age for display
func TopIncomes(rows []Row, n int) []Row {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalIncome > sorted[j].TotalIncome
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Age < sorted[j].Age
	})
	return sorted
}

// GenderTotals sums every category per gender, ordered by gender
//
// Rows with an empty gender have no group and are left out.
func GenderTotals(rows []Row) []GenderTotal {
	sums := make(map[string][]decimal.Decimal)
	for _, row := range rows {
		if row.Gender == "" {
			continue
		}
		acc, ok := sums[row.Gender]
		if !ok {
			acc = make([]decimal.Decimal, len(domain.Categories))
			sums[row.Gender] = acc
		}
		for i := range domain.Categories {
			acc[i] = acc[i].Add(decimal.NewFromFloat(row.Expense(domain.Categories[i])))
		}
	}

	genders := make([]string, 0, len(sums))
	for g := range sums {
		genders = append(genders, g)
	}
	sort.Strings(genders)

	out := make([]GenderTotal, 0, len(genders))
	for _, g := range genders {
		totals := make(map[string]float64, len(domain.Categories))
		for i, c := range domain.Categories {
			totals[c], _ = sums[g][i].Float64()
		}
		out = append(out, GenderTotal{Gender: g, Totals: totals})
	}
	return out
}
