package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	api "blog-v0/internal/api/application"
	metricsdomain "blog-v0/internal/metrics/domain"
	metricsinfra "blog-v0/internal/metrics/infrastructure"
)

func TestMetricsHandler_Scrape(t *testing.T) {
	registry := metricsinfra.NewRegistry("victorbona-blog")
	registry.RecordPageView(metricsdomain.PageView{
		Path: "/blog/post", Method: "GET", ContentType: "blog", Source: "direct",
		Browser: "chrome", Device: "desktop",
	})

	handler := NewMetricsHandler(api.NewMetricsService(registry.Gatherer()))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	handler.Scrape(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("unexpected content type %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		"# TYPE page_views_total counter",
		`path="/blog/post"`,
		`app="victorbona-blog"`,
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestMetricsHandler_GatherFailure(t *testing.T) {
	failing := prometheus.GathererFunc(func() ([]*dto.MetricFamily, error) {
		return nil, errors.New("collector exploded")
	})
	handler := NewMetricsHandler(api.NewMetricsService(failing))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	handler.Scrape(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "Service Unavailable" {
		t.Errorf("expected plain 503 body, got %q", body)
	}
}
