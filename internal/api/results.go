package api

import (
	"net/http"                      // HTTP status codes
	"os"                            // File existence checks
	"path/filepath"                 // Attachment names
	"survey_system/internal/domain" // Importing domain models
	"survey_system/internal/report" // Report generation
	"survey_system/internal/web"    // Page templates

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// resultsView feeds the results page template
type resultsView struct {
	Records        []domain.SurveyRecord // Every stored record
	IncomeChartURL string                // Top incomes chart image
	GenderChartURL string                // Spending by gender chart image
}

// ResultsHandler rebuilds the CSV and charts and renders the results page
func ResultsHandler(gen *report.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := gen.Generate(c.Request.Context()) // Recompute everything from the store
		if err != nil {
			logrus.WithError(err).Error("Report generation failed") // Log failure
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
			return
		}
		paths := gen.Paths()
		c.HTML(http.StatusOK, web.ResultsPage, resultsView{
			Records:        rep.Records,                                         // Listed in full
			IncomeChartURL: StaticPrefix + "/" + filepath.Base(paths.IncomeChart), // Served by the static route
			GenderChartURL: StaticPrefix + "/" + filepath.Base(paths.GenderChart), // Served by the static route
		})
	}
}

// DownloadHandler streams a generated file as an attachment
//
// The file only exists once the results page has been generated.
func DownloadHandler(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := os.Stat(path) // Check the report has been generated
		if err != nil || info.IsDir() {
			logrus.WithField("path", path).Warn("Download requested before report generation")
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		c.FileAttachment(path, filepath.Base(path))
	}
}
