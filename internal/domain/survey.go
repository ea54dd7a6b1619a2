package domain

import (
	"fmt"     // Error formatting
	"math"    // Finite checks
	"sort"    // Stable error messages
	"strconv" // Number parsing
	"strings" // Whitespace trimming

	"github.com/shopspring/decimal" // Exact decimal rounding
)

// Expense categories offered on the survey form
const (
	Utilities     = "utilities"     // Utility bills
	Entertainment = "entertainment" // Entertainment spending
	SchoolFees    = "school_fees"   // School fees
	Shopping      = "shopping"      // Shopping
	Healthcare    = "healthcare"    // Healthcare
)

// Categories is the fixed category order used by the form, the CSV and the charts
var Categories = []string{Utilities, Entertainment, SchoolFees, Shopping, Healthcare}

// SurveyRecord Model
type SurveyRecord struct {
	ID          uint               `gorm:"primaryKey" bson:"-" json:"-"`                              // Primary key (SQL backend only)
	Age         int                `gorm:"not null" bson:"age" json:"age"`                            // Respondent age
	Gender      string             `bson:"gender" json:"gender"`                                      // Free-text gender
	TotalIncome float64            `gorm:"not null" bson:"total_income" json:"total_income"`          // Income rounded to cents
	Expenses    map[string]float64 `gorm:"serializer:json;type:json" bson:"expenses" json:"expenses"` // Checked categories only
	CreatedAt   int64              `gorm:"autoCreateTime:milli" bson:"-" json:"-"`                    // Timestamp of creation in milliseconds
}

// UnknownCategories lists expense keys outside the fixed category set
func (r SurveyRecord) UnknownCategories() []string {
	var unknown []string
	for k := range r.Expenses {
		if !IsCategory(k) {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// IsCategory reports whether name is one of the fixed expense categories
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true // Known category
		}
	}
	return false
}

// Expense returns the amount spent on a category, zero when absent
func (r SurveyRecord) Expense(category string) float64 {
	return r.Expenses[category] // Nil map and missing key both yield zero
}

// TotalExpenses sums every recorded category
func (r SurveyRecord) TotalExpenses() float64 {
	total := decimal.Zero
	for _, v := range r.Expenses {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Float64()
	return f
}

// RoundCents rounds a value to two decimal places
func RoundCents(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// ParseAge parses the required age field
func ParseAge(raw string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid age %q: %w", raw, err)
	}
	return age, nil
}

// ParseAmount parses a finite decimal amount and rounds it to cents
func ParseAmount(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64) // Out of range exponents fail fast with ErrRange
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("invalid amount %q: not a finite number", raw)
	}
	return RoundCents(f), nil
}

// AmountOrZero parses an optional amount, falling back to 0.0 on any parse failure
func AmountOrZero(raw string) float64 {
	f, err := ParseAmount(raw)
	if err != nil {
		return 0.0 // Silently coerced
	}
	return f
}
