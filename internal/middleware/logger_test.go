package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/worldradio/newsroom-go/internal/metrics"
)

func TestLogger_RecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Logger)
	r.Delete("/api/favorites/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	routed := metrics.RequestTotal.WithLabelValues("DELETE", "/api/favorites/{id}", "200")
	unmatched := metrics.RequestTotal.WithLabelValues("GET", "unmatched", "404")
	routedBefore := testutil.ToFloat64(routed)
	unmatchedBefore := testutil.ToFloat64(unmatched)

	for _, path := range []string{"/api/favorites/12", "/api/favorites/13"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, path, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no/such/7", nil))

	if got := testutil.ToFloat64(routed) - routedBefore; got != 2 {
		t.Errorf("routed count delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(unmatched) - unmatchedBefore; got != 1 {
		t.Errorf("unmatched count delta = %v, want 1", got)
	}
}
