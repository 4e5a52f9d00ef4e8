package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"project_materials/internal/domain/entities"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	return w.Body.String()
}

func TestMetrics(t *testing.T) {
	m := New()
	m.OrderPlaced()
	m.OrderPlaced()
	m.OrderUpdated(entities.OrderStatusCompleted)
	m.ObserveRequest(http.MethodPost, "/orders", http.StatusOK, 15*time.Millisecond)

	body := scrape(t, m)
	for _, want := range []string{
		"orders_placed_total 2",
		`order_updates_total{status="completed"} 1`,
		`http_requests_total{method="POST",route="/orders",status="200"} 1`,
		`http_request_duration_seconds_count{method="POST",route="/orders"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}

func TestMetrics_Independent(t *testing.T) {
	a, b := New(), New()
	a.OrderPlaced()
	if !strings.Contains(scrape(t, b), "orders_placed_total 0") {
		t.Fatalf("registries are shared")
	}
}
