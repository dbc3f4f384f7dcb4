package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	taggingapp "blog-v0/internal/tagging/application"
	"blog-v0/internal/tagging/domain"
	tagginginfra "blog-v0/internal/tagging/infrastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func newTestTagger() *taggingapp.Tagger {
	return taggingapp.NewTagger(nil, tagginginfra.NewUserAgentParser(), tagginginfra.NewBotDetector())
}

func serveTagged(t *testing.T, req *http.Request) (domain.Tags, bool) {
	t.Helper()

	var (
		got domain.Tags
		ok  bool
	)
	handler := Tagging(newTestTagger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = domain.TagsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return got, ok
}

func TestTagging_BlogPostFromGoogle(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/Blog/My-Post/?utm_source=Newsletter&utm_medium=email", nil)
	req.Header.Set("Referer", "https://www.google.com/search?q=x")
	req.Header.Set("User-Agent", chromeUA)

	tags, ok := serveTagged(t, req)
	require.True(t, ok)

	assert.Equal(t, "/blog/my-post", tags.Path)
	assert.Equal(t, "GET", tags.Method)
	assert.Equal(t, "blog", tags.ContentType)
	assert.False(t, tags.IsBot)
	assert.Equal(t, "google", tags.Source)
	assert.Equal(t, "newsletter", tags.UTMSource)
	assert.Equal(t, "email", tags.UTMMedium)
	assert.Equal(t, "chrome", tags.Browser)
	assert.Equal(t, "desktop", tags.Device)
	assert.False(t, tags.StartedAt.IsZero())
}

func TestTagging_ExcludedPathsPassThrough(t *testing.T) {
	for _, path := range []string{"/api/plusone/x", "/metrics", "/health", "/_next/static/a.js", "/favicon.ICO", "/styles/site.css"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("User-Agent", chromeUA)

			_, ok := serveTagged(t, req)
			assert.False(t, ok)
		})
	}
}

func TestTagging_Bot(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")

	tags, ok := serveTagged(t, req)
	require.True(t, ok)
	assert.True(t, tags.IsBot)
	assert.Equal(t, "page", tags.ContentType)
	assert.Equal(t, "direct", tags.Source)
}

func TestTagging_EmptyUserAgent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Del("User-Agent")

	tags, ok := serveTagged(t, req)
	require.True(t, ok)
	assert.Equal(t, "unknown", tags.Browser)
	assert.Equal(t, "unknown", tags.Device)
	assert.Equal(t, "project", tags.ContentType)
}
