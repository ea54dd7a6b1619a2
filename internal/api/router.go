package api

import (
	"survey_system/internal/db"         // Record store
	"survey_system/internal/middleware" // Request logging and metrics
	"survey_system/internal/report"     // Report generation
	"survey_system/internal/utils"      // Summary cache
	"survey_system/internal/web"        // Page templates

	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus/promhttp" // Metrics endpoint
)

// StaticPrefix is the URL prefix generated charts are served under
const StaticPrefix = "/static"

// RouterConfig holds what the HTTP routes depend on
type RouterConfig struct {
	Store     db.RecordStore    // Record store
	Generator *report.Generator // Report generator
	Cache     *utils.Cache      // Summary cache, may be disabled
	StaticDir string            // Directory holding generated charts
}

// NewRouter builds the gin engine with every route
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.RequestMetrics())
	r.SetHTMLTemplate(web.Templates())

	// Survey form
	r.GET("/", SurveyFormHandler())                        // Form page
	r.POST("/", SubmitSurveyHandler(cfg.Store, cfg.Cache)) // Form submission
	r.GET("/thanks", ThanksHandler())                      // Acknowledgment page

	// Report and generated assets
	paths := cfg.Generator.Paths()
	r.GET("/results", ResultsHandler(cfg.Generator))                    // Results page
	r.GET("/download_csv", DownloadHandler(paths.CSV))                  // CSV download
	r.GET("/download_income_chart", DownloadHandler(paths.IncomeChart)) // Income chart download
	r.GET("/download_gender_chart", DownloadHandler(paths.GenderChart)) // Gender chart download
	r.Static(StaticPrefix, cfg.StaticDir)                               // Embedded chart images

	// Machine-readable endpoints
	r.GET("/api/summary", SummaryHandler(cfg.Store, cfg.Cache)) // JSON statistics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))           // Prometheus metrics
	return r
}
