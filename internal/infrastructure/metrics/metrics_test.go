package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordMutation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordMutation(EntityLead, OpCreate)
	m.RecordMutation(EntityLead, OpCreate)
	m.RecordMutation(EntityLeadMagnet, OpDelete)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutationsTotal.WithLabelValues(EntityLead, OpCreate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutationsTotal.WithLabelValues(EntityLeadMagnet, OpDelete)))
}

func TestMetrics_Requests(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight))

	m.RequestFinished(http.MethodGet, "/api/leads/:id", http.StatusNotFound, 5*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/leads/:id", "404")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.RecordAuthFailure("missing_credentials")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `leadfunnel_auth_failures_total{reason="missing_credentials"} 1`))
}
