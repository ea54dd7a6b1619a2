// Package web holds the HTML pages served by the survey application.
package web

import (
	"embed"         // Embedded page templates
	"html/template" // HTML escaping templates
	"strings"       // Joining expense labels

	"survey_system/internal/domain" // Category order
	"survey_system/internal/report" // Float formatting
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names
const (
	SurveyPage  = "survey.html"
	ThanksPage  = "thanks.html"
	ResultsPage = "results.html"
)

// Funcs are the helpers available inside page templates
var Funcs = template.FuncMap{
	"amount":     report.FormatFloat,
	"expenses":   formatExpenses,
	"categories": func() []string { return domain.Categories },
	"label":      categoryLabel,
}

// Templates parses every embedded page
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html"))
}

// formatExpenses lists recorded categories in form order
func formatExpenses(expenses map[string]float64) string {
	parts := make([]string, 0, len(expenses))
	for _, c := range domain.Categories {
		if v, ok := expenses[c]; ok {
			parts = append(parts, categoryLabel(c)+": $"+report.FormatFloat(v))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// categoryLabel turns school_fees into "School fees"
func categoryLabel(c string) string {
	s := strings.ReplaceAll(c, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
