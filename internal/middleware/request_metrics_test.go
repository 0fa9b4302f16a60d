package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/gymquest/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.HandleFunc("/plans/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods("GET")
	r.Use(RequestMetrics(metricsManager))

	for _, id := range []string{"squats", "plank", "burpees"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/plans/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "404")))

	// one series for the route template, not one per id
	count, err := testutil.GatherAndCount(reg, "gymquest_test_server_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRouteTemplate_Unmatched(t *testing.T) {
	assert.Equal(t, unmatchedRoute, routeTemplate(httptest.NewRequest("GET", "/nowhere", nil)))
}
