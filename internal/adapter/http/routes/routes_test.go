package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"project_materials/internal/infrastructure/config"
	"project_materials/internal/infrastructure/metrics"
	"project_materials/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func testConfig() config.Config {
	return config.Config{
		HTTPPort:        8080,
		StoreBackend:    config.BackendMemory,
		MetricsEnabled:  true,
		SwaggerEnabled:  true,
		CORSOrigins:     "*",
		ShutdownTimeout: 0,
	}
}

func newTestRouter(t *testing.T, cfg config.Config) (*gin.Engine, *logrus.Logger) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, _ := logtest.NewNullLogger()

	repos, err := NewRepositories(context.Background(), cfg, log)
	if err != nil {
		t.Fatalf("repositories: %v", err)
	}
	var m *metrics.Metrics
	var recorder usecase.OrderRecorder
	if cfg.MetricsEnabled {
		m = metrics.New()
		recorder = m
	}
	router, err := NewRouter(cfg, log, usecase.NewProjectManager(repos, log, recorder), m)
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return router, log
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func TestRouter_OrderLifecycle(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	mustStatus(t, do(r, http.MethodPost, "/projects", `{"id":1,"name":"House","start_date":"2024-01-02"}`), http.StatusOK)
	mustStatus(t, do(r, http.MethodPost, "/materials", `{"id":1,"name":"Cement","unit":"bag"}`), http.StatusOK)
	mustStatus(t, do(r, http.MethodPost, "/suppliers", `{"id":1,"name":"ACME","materials":[1]}`), http.StatusOK)
	mustStatus(t, do(r, http.MethodPost, "/quotes", `{"id":1,"project_id":1,"supplier_id":1,"material_id":1,"quantity":2,"price":3}`), http.StatusOK)

	w := do(r, http.MethodGet, "/projects/1/total", "")
	mustStatus(t, w, http.StatusOK)
	if got := strings.TrimSpace(w.Body.String()); got != `{"total":6}` {
		t.Fatalf("unexpected total: %s", got)
	}

	w = do(r, http.MethodPost, "/orders", `{"quote_id":1}`)
	mustStatus(t, w, http.StatusOK)
	if got := strings.TrimSpace(w.Body.String()); got != `{"id":1,"quote_id":1,"status":"ordered","final_price":null}` {
		t.Fatalf("unexpected order: %s", got)
	}

	w = do(r, http.MethodPut, "/orders/1?final_price=50", "")
	mustStatus(t, w, http.StatusOK)
	if got := strings.TrimSpace(w.Body.String()); got != `{"id":1,"quote_id":1,"status":"ordered","final_price":50}` {
		t.Fatalf("unexpected order: %s", got)
	}

	w = do(r, http.MethodGet, "/projects/1/total", "")
	if got := strings.TrimSpace(w.Body.String()); got != `{"total":100}` {
		t.Fatalf("unexpected total after update: %s", got)
	}

	w = do(r, http.MethodGet, "/projects/1/quotes/best?material_id=1", "")
	mustStatus(t, w, http.StatusOK)
	var best struct {
		ID    int     `json:"id"`
		Price float64 `json:"price"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &best); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if best.ID != 1 || best.Price != 50 {
		t.Fatalf("unexpected best quote: %+v", best)
	}

	mustStatus(t, do(r, http.MethodPut, "/orders/9?status=completed", ""), http.StatusNotFound)
	mustStatus(t, do(r, http.MethodPost, "/orders", `{"quote_id":9}`), http.StatusNotFound)

	w = do(r, http.MethodGet, "/projects/1/quotes/export", "")
	mustStatus(t, w, http.StatusOK)
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "1,1,1,1,,2,50") {
		t.Fatalf("unexpected export: %q", w.Body.String())
	}

	w = do(r, http.MethodGet, "/ui/projects", "")
	mustStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "House") {
		t.Fatalf("project missing from page")
	}

	w = do(r, http.MethodGet, "/metrics", "")
	mustStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "orders_placed_total 1") {
		t.Fatalf("orders_placed_total not exported")
	}
}

func TestRouter_RejectsNonFiniteAmounts(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	mustStatus(t, do(r, http.MethodPost, "/quotes", `{"id":1,"project_id":1,"supplier_id":1,"material_id":1,"quantity":2,"price":3}`), http.StatusOK)
	mustStatus(t, do(r, http.MethodPost, "/orders", `{"quote_id":1}`), http.StatusOK)

	for _, v := range []string{"NaN", "Inf", "-Inf"} {
		mustStatus(t, do(r, http.MethodPut, "/orders/1?final_price="+v, ""), http.StatusBadRequest)
	}

	req := httptest.NewRequest(http.MethodPost, "/ui/orders/update", strings.NewReader("order_id=1&final_price=NaN"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	mustStatus(t, w, http.StatusBadRequest)

	mustStatus(t, do(r, http.MethodGet, "/quantities/calculate?base_measure=NaN&multiplier=1", ""), http.StatusBadRequest)

	w = do(r, http.MethodGet, "/projects/1/total", "")
	mustStatus(t, w, http.StatusOK)
	if got := strings.TrimSpace(w.Body.String()); got != `{"total":6}` {
		t.Fatalf("unexpected total: %s", got)
	}
	w = do(r, http.MethodGet, "/projects/1/quotes", "")
	mustStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"price":3`) {
		t.Fatalf("unexpected quotes: %q", w.Body.String())
	}
	w = do(r, http.MethodGet, "/orders", "")
	if got := strings.TrimSpace(w.Body.String()); got != `[{"id":1,"quote_id":1,"status":"ordered","final_price":null}]` {
		t.Fatalf("unexpected orders: %s", got)
	}
}

func TestRouter_Operational(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := do(r, http.MethodGet, "/health", "")
	mustStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Fatalf("unexpected health body %q", w.Body.String())
	}

	w = do(r, http.MethodGet, "/", "")
	mustStatus(t, w, http.StatusOK)
	if got := strings.TrimSpace(w.Body.String()); got != `{"message":"Project materials API"}` {
		t.Fatalf("unexpected banner %s", got)
	}

	w = do(r, http.MethodGet, "/swagger/doc.json", "")
	mustStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "/projects/{id}/quotes/best") {
		t.Fatalf("swagger document incomplete")
	}

	if w := do(r, http.MethodGet, "/unknown", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/projects", ""); w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestRouter_OptionalEndpointsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	cfg.SwaggerEnabled = false
	r, _ := newTestRouter(t, cfg)

	mustStatus(t, do(r, http.MethodGet, "/metrics", ""), http.StatusNotFound)
	mustStatus(t, do(r, http.MethodGet, "/swagger/doc.json", ""), http.StatusNotFound)
	mustStatus(t, do(r, http.MethodGet, "/health", ""), http.StatusOK)
}

func TestCORSConfig(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		c := corsConfig([]string{"*"})
		if !c.AllowAllOrigins || len(c.AllowOrigins) != 0 {
			t.Fatalf("unexpected config: %+v", c)
		}
	})
	t.Run("empty", func(t *testing.T) {
		if !corsConfig(nil).AllowAllOrigins {
			t.Fatalf("expected all origins allowed")
		}
	})
	t.Run("explicit", func(t *testing.T) {
		c := corsConfig([]string{"http://localhost:3000"})
		if c.AllowAllOrigins || len(c.AllowOrigins) != 1 {
			t.Fatalf("unexpected config: %+v", c)
		}
	})
}

func TestNewRepositories(t *testing.T) {
	log, _ := logtest.NewNullLogger()

	t.Run("memory", func(t *testing.T) {
		repos, err := NewRepositories(context.Background(), testConfig(), log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repos.Projects == nil || repos.Orders == nil || repos.Quotes == nil {
			t.Fatalf("repositories not wired: %+v", repos)
		}
	})

	t.Run("dynamodb", func(t *testing.T) {
		cfg := testConfig()
		cfg.StoreBackend = config.BackendDynamoDB
		cfg.AWS = config.AWS{Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local", DynamoDBEndpoint: "http://localhost:8000"}
		repos, err := NewRepositories(context.Background(), cfg, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repos.Suppliers == nil || repos.Orders == nil {
			t.Fatalf("repositories not wired: %+v", repos)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := testConfig()
		cfg.StoreBackend = "redis"
		if _, err := NewRepositories(context.Background(), cfg, log); err == nil {
			t.Fatalf("expected error")
		}
	})
}
