package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSubmission(t *testing.T) {
	before := testutil.ToFloat64(submissionsTotal.WithLabelValues(SubmissionInvalid))
	ObserveSubmission(SubmissionInvalid)
	ObserveSubmission(SubmissionInvalid)
	assert.Equal(t, before+2, testutil.ToFloat64(submissionsTotal.WithLabelValues(SubmissionInvalid)))
}

func TestObserveReportAndRequest(t *testing.T) {
	ObserveReport(150 * time.Millisecond)
	ObserveRequest("GET", "/results", "200", 20*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(reportGenerationSeconds))
	assert.Equal(t, 1, testutil.CollectAndCount(httpRequestDuration))
}
