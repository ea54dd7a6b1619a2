package api

import (
	"net/http"                      // HTTP status codes
	"survey_system/internal/db"     // Record store
	"survey_system/internal/report" // Statistics
	"survey_system/internal/utils"  // Summary cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SummaryResponse is the JSON body of the summary endpoint
type SummaryResponse struct {
	Count        int                  `json:"count"`         // Stored records
	TopIncomes   []report.Row         `json:"top_incomes"`   // Same bars as the income chart
	GenderTotals []report.GenderTotal `json:"gender_totals"` // Same series as the gender chart
	Cached       bool                 `json:"cached"`        // Served from Redis
}

// SummaryHandler returns the report statistics as JSON without touching generated files
func SummaryHandler(store db.RecordStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached SummaryResponse
		// If cached data found, return it
		found, err := cache.Get(ctx, utils.SummaryCacheKey, &cached)
		if err == nil && found {
			cached.Cached = true // Indicate response is from cache
			c.JSON(http.StatusOK, cached)
			return
		}
		if err != nil {
			logrus.WithError(err).Warn("Summary cache read failed")
		}
		records, err := store.FindAllRecords(ctx)
		if err != nil {
			logrus.WithError(err).Error("Failed to load survey records") // Log store failure
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load survey records"})
			return
		}
		rows := report.RowsFromRecords(records)
		resp := SummaryResponse{
			Count:        len(records),                                   // Stored records
			TopIncomes:   report.TopIncomes(rows, report.TopIncomeLimit), // Top incomes by age
			GenderTotals: report.GenderTotals(rows),                      // Spending per gender
		}
		// Cache the response for future requests
		_ = cache.Set(ctx, utils.SummaryCacheKey, resp, utils.SummaryCacheTTL)
		c.JSON(http.StatusOK, resp)
	}
}
