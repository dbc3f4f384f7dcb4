package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "blog-v0/internal/api/application"
	contentapp "blog-v0/internal/content/application"
	"blog-v0/internal/infrastructure/logger"
)

func TestFeedHandler(t *testing.T) {
	content := contentapp.NewService(logger.DefaultLogger(), stubContentRepository{})
	if err := content.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	handler := NewFeedHandler(contentapp.NewFeeds(testSite, content))

	tests := []struct {
		name        string
		serve       http.HandlerFunc
		contentType string
		contains    string
	}{
		{"sitemap", handler.Sitemap, "application/xml", "<loc>https://blog.victorbona.dev/blog/hello-world</loc>"},
		{"rss", handler.RSS, "application/rss+xml", "<title>Hello &lt;World&gt;</title>"},
		{"robots", handler.Robots, "text/plain", "Sitemap: https://blog.victorbona.dev/sitemap.xml"},
		{"llms", handler.LLMsTxt, "text/plain", "# LLM Discovery File for Victor Bona Blog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.serve(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("expected content type %q, got %q", tt.contentType, ct)
			}
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("expected body to contain %q, got:\n%s", tt.contains, w.Body.String())
			}
		})
	}
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp api.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
}
