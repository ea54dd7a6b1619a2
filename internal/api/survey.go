package api

import (
	"fmt"                            // Error wrapping
	"net/http"                       // HTTP status codes
	"survey_system/internal/db"      // Record store
	"survey_system/internal/domain"  // Importing domain models
	"survey_system/internal/metrics" // Submission counters
	"survey_system/internal/utils"   // Summary cache
	"survey_system/internal/web"     // Page templates

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SurveyFormHandler renders the survey form
func SurveyFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, web.SurveyPage, nil)
	}
}

// ThanksHandler renders the acknowledgment page
func ThanksHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, web.ThanksPage, nil)
	}
}

// SubmitSurveyHandler stores one form submission and redirects to the thank-you page
func SubmitSurveyHandler(store db.RecordStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := parseSubmission(c) // Coerce form fields
		// Required fields are not defaulted
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"age":          c.PostForm("age"),          // Raw age
				"total_income": c.PostForm("total_income"), // Raw income
				"error":        err.Error(),                // Error message
			}).Error("Invalid survey submission") // Log rejected submission
			metrics.ObserveSubmission(metrics.SubmissionInvalid)
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		// Insert as a new document
		if err := store.InsertRecord(c.Request.Context(), record); err != nil {
			logrus.WithFields(logrus.Fields{
				"age":   record.Age,  // Respondent age
				"error": err.Error(), // Error message
			}).Error("Failed to store survey submission") // Log store failure
			metrics.ObserveSubmission(metrics.SubmissionStoreError)
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		// Log successful submission
		logrus.WithFields(logrus.Fields{
			"age":          record.Age,         // Respondent age
			"gender":       record.Gender,      // Respondent gender
			"total_income": record.TotalIncome, // Income
			"expenses":     record.Expenses,    // Checked categories
		}).Info("Survey submission stored")
		metrics.ObserveSubmission(metrics.SubmissionOK)
		// A new record makes any cached summary stale
		if err := cache.Delete(c.Request.Context(), utils.SummaryCacheKey); err != nil {
			logrus.WithError(err).Warn("Failed to invalidate summary cache")
		}
		c.Redirect(http.StatusFound, "/thanks")
	}
}

// parseSubmission builds a record from the posted form
//
// age and total_income must parse. A category is kept only when its checkbox
// was sent non-empty; its <category>_amount falls back to 0.0 when missing or
// unparsable. gender is stored as sent.
func parseSubmission(c *gin.Context) (domain.SurveyRecord, error) {
	age, err := domain.ParseAge(c.PostForm("age"))
	if err != nil {
		return domain.SurveyRecord{}, fmt.Errorf("age: %w", err)
	}
	income, err := domain.ParseAmount(c.PostForm("total_income"))
	if err != nil {
		return domain.SurveyRecord{}, fmt.Errorf("total_income: %w", err)
	}
	expenses := make(map[string]float64)
	for _, category := range domain.Categories {
		if c.PostForm(category) == "" {
			continue // Checkbox not ticked
		}
		expenses[category] = domain.AmountOrZero(c.PostForm(category + "_amount"))
	}
	return domain.SurveyRecord{
		Age:         age,                  // Respondent age
		Gender:      c.PostForm("gender"), // Free-text gender
		TotalIncome: income,               // Rounded income
		Expenses:    expenses,             // Checked categories only
	}, nil
}
