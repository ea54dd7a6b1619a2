package web

import (
	"bytes"
	"testing"

	"survey_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl := Templates()
	for _, name := range []string{SurveyPage, ThanksPage, ResultsPage} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestSurveyPageHasEveryCategory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, SurveyPage, nil))

	page := buf.String()
	for _, c := range domain.Categories {
		assert.Contains(t, page, `name="`+c+`"`)
		assert.Contains(t, page, `name="`+c+`_amount"`)
	}
	assert.Contains(t, page, `name="age"`)
	assert.Contains(t, page, `name="total_income"`)
}

func TestFormatExpenses(t *testing.T) {
	assert.Equal(t, "none", formatExpenses(nil))
	assert.Equal(t, "Utilities: $120.5, School fees: $0.0",
		formatExpenses(map[string]float64{domain.SchoolFees: 0, domain.Utilities: 120.5}))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "School fees", categoryLabel(domain.SchoolFees))
	assert.Equal(t, "", categoryLabel(""))
}
